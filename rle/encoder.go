package rle

import (
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/flagrle/flagbyte"
	"github.com/noxer/bytewriter"
)

// MaxEncodedSize returns the largest possible size of `inputSize` bytes after
// encoding. Tokens are only emitted when they're shorter than the run they
// replace, so the worst case is the input stored as-is plus the trailer.
func MaxEncodedSize(inputSize int) int {
	return inputSize + TrailerSize
}

// Encode compresses `input` using `flag` as the token marker and returns the
// result in a new buffer.
//
// `flag` must not occur in `input`; use [flagbyte.Select] to pick one. If it's
// [flagbyte.None] the input is stored uncompressed, followed by the trailer.
func Encode(input []byte, flag byte, textSafe bool) ([]byte, error) {
	output := make([]byte, MaxEncodedSize(len(input)))
	n, err := EncodeTo(bytewriter.New(output), input, flag, textSafe)
	if err != nil {
		return nil, err
	}
	return output[:n], nil
}

// EncodeTo compresses `input` like [Encode] but writes the result to `output`.
// The return value is the number of bytes written, only valid if no error
// occurred.
func EncodeTo(output io.Writer, input []byte, flag byte, textSafe bool) (int, error) {
	totalBytesWritten := 0
	write := func(chunk []byte) error {
		n, err := output.Write(chunk)
		totalBytesWritten += n
		if err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
		return nil
	}

	if flag == flagbyte.None {
		if err := write(input); err != nil {
			return totalBytesWritten, err
		}
	} else if err := encodeRuns(write, input, flag, textSafe); err != nil {
		return totalBytesWritten, err
	}

	trailer := Trailer{FlagByte: flag, TextSafe: textSafe}.Bytes()
	return totalBytesWritten, write(trailer[:])
}

func encodeRuns(write func([]byte) error, input []byte, flag byte, textSafe bool) error {
	var tokenBuffer [MaxTokenSize]byte
	scanner := NewRunScanner(input)

	for {
		run, err := scanner.NextRun()
		if errors.Is(err, io.EOF) {
			return nil
		}

		var chunk []byte
		if ShouldCompress(run.RunLength, textSafe) {
			chunk = appendToken(tokenBuffer[:0], flag, run, textSafe)
		} else {
			chunk = input[run.Offset : run.Offset+run.RunLength]
		}

		if err := write(chunk); err != nil {
			return err
		}
	}
}
