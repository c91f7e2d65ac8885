package compression

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dargueta/flagrle"
	"github.com/klauspost/compress/gzip"
)

// CompressStream reads `input` until EOF and writes it to `output` compressed
// with `options`.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressStream(input io.Reader, output io.Writer, options flagrle.Options) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	compressed, err := flagrle.Compress(data, options)
	if err != nil {
		return 0, err
	}
	return writeAll(output, compressed)
}

// DecompressStream reads compressed data from `input` until EOF and writes the
// original bytes to `output`.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	decompressed, err := flagrle.Decompress(data)
	if err != nil {
		return 0, err
	}
	return writeAll(output, decompressed)
}

// CompressImage compresses an image using flagrle with binary tokens and gzip.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressImage(input io.Reader, output io.Writer) (int64, error) {
	return CompressImageWithOptions(input, output, flagrle.DefaultOptions)
}

// CompressImageWithOptions is [CompressImage] with control over the flagrle
// stage.
func CompressImageWithOptions(
	input io.Reader, output io.Writer, options flagrle.Options,
) (int64, error) {
	// Wrap the output stream in a gzip compressor using the highest compression
	// available. Images aren't that huge so we won't notice much of a speed
	// difference between the default and highest levels.
	counter := &countingWriter{w: output}
	gzWriter, err := gzip.NewWriterLevel(counter, gzip.BestCompression)
	if err != nil {
		return 0, err
	}

	if _, err = CompressStream(input, gzWriter, options); err != nil {
		gzWriter.Close()
		return counter.n, err
	}
	if err = gzWriter.Close(); err != nil {
		return counter.n, fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	return counter.n, nil
}

// DecompressImage takes a gzipped, flagrle-encoded image and decompresses it
// to the original raw bytes.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size of the image). If an error occurred, the value is undefined
// and should not be used.
func DecompressImage(input io.Reader, output io.Writer) (int64, error) {
	gzReader, err := gzip.NewReader(bufio.NewReader(input))
	if err != nil {
		return 0, err
	}
	defer gzReader.Close()
	return DecompressStream(gzReader, output)
}

// DecompressImageToBytes is a convenience function wrapping [DecompressImage].
// It functions identically, except it returns the decompressed image in a new
// byte slice instead of writing to an [io.Writer].
func DecompressImageToBytes(input io.Reader) ([]byte, error) {
	gzReader, err := gzip.NewReader(bufio.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer gzReader.Close()

	data, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return flagrle.Decompress(data)
}

func writeAll(output io.Writer, data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	n, err := output.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}

// countingWriter tracks how many bytes gzip pushed to the real output.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
