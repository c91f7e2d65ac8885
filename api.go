package flagrle

import (
	"bytes"

	"github.com/dargueta/flagrle/flagbyte"
	"github.com/dargueta/flagrle/rle"
)

const (
	// MinCompressSize is the smallest input [Compress] will try to shrink.
	// Anything shorter is returned unchanged: a token plus the trailer is
	// already six bytes.
	MinCompressSize = 6
)

// Compress run-length encodes `input` and returns the result in a new buffer.
// Inputs shorter than [MinCompressSize] are returned unchanged, as a copy.
//
// The output can be up to two bytes larger than the input, for example if no
// run is long enough to compress or every non-zero byte value occurs in the
// input. The latter is not an error in binary mode; the data is stored as-is.
//
// Compression fails with [ErrFlagByteCollision] if `options.FlagByte` occurs in
// the input, and with [ErrNoTextSafeByte] if text-safe mode was requested and
// every printable character occurs in the input.
func Compress(input []byte, options Options) ([]byte, error) {
	if len(input) < MinCompressSize {
		return bytes.Clone(nonNil(input)), nil
	}

	flag, err := flagbyte.Select(input, options.TextSafe, options.FlagByte)
	if err != nil {
		return nil, err
	}
	return rle.Encode(input, flag, options.TextSafe)
}

// Decompress restores data compressed with [Compress] and returns it in a new
// buffer. Inputs shorter than [MinCompressSize] are ones Compress passes
// through untouched, so they're returned unchanged as well, as a copy.
//
// Corruption is only detected if it breaks the structure of a token, in which
// case this fails with [ErrMalformedInput]. Other damage decodes to garbage.
func Decompress(input []byte) ([]byte, error) {
	// Encoded output is never shorter than six bytes. Five-byte buffers must
	// be passed through too, or Compress's five-byte inputs wouldn't round
	// trip.
	if len(input) < MinCompressSize {
		return bytes.Clone(nonNil(input)), nil
	}
	return rle.Decode(input)
}

// CompressString is [Compress] for strings. Each byte of the string is one
// character; this round-trips any byte sequence, UTF-8 or not.
func CompressString(input string, options Options) (string, error) {
	output, err := Compress([]byte(input), options)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// DecompressString is [Decompress] for strings.
func DecompressString(input string) (string, error) {
	output, err := Decompress([]byte(input))
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// Info describes a compressed buffer. See [Inspect].
type Info = rle.Info

// Inspect returns the encoding details of a buffer produced by [Compress]
// without decompressing it. Buffers Compress would have returned unchanged
// are reported as uncompressed literals with no trailer.
func Inspect(compressed []byte) (Info, error) {
	if len(compressed) < MinCompressSize {
		return Info{Literals: len(compressed), DecodedSize: len(compressed)}, nil
	}
	return rle.Inspect(compressed)
}

// Codec compresses and decompresses with a fixed set of options. It holds no
// other state, so a single Codec can be shared between goroutines.
type Codec struct {
	Options Options
}

// NewCodec returns a codec using `options` for compression.
func NewCodec(options Options) Codec {
	return Codec{Options: options}
}

func (c Codec) Compress(input []byte) ([]byte, error) {
	return Compress(input, c.Options)
}

func (c Codec) Decompress(input []byte) ([]byte, error) {
	return Decompress(input)
}

func (c Codec) CompressString(input string) (string, error) {
	return CompressString(input, c.Options)
}

func (c Codec) DecompressString(input string) (string, error) {
	return DecompressString(input)
}

// nonNil ensures a nil slice is returned as an empty one.
func nonNil(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	return data
}
