package rle

import (
	"github.com/dargueta/flagrle/flagbyte"
)

// Info summarizes a compressed buffer without expanding it.
type Info struct {
	Trailer
	// Tokens is the number of compressed runs in the payload.
	Tokens int
	// Literals is the number of bytes copied through as-is.
	Literals int
	// DecodedSize is the size of the data after decompression.
	DecodedSize int
}

// Escaped returns true if the payload was stored uncompressed because no byte
// value was available for use as a flag.
func (info Info) Escaped() bool {
	return info.FlagByte == flagbyte.None
}

// Inspect reads the trailer of `compressed` and walks its payload to count
// tokens and literals and compute the decompressed size. It fails with
// ErrMalformedInput if a token is cut off or has a bad length field.
func Inspect(compressed []byte) (Info, error) {
	info, _, err := inspect(compressed)
	return info, err
}

func inspect(compressed []byte) (Info, []byte, error) {
	trailer, payload, err := ReadTrailer(compressed)
	if err != nil {
		return Info{}, nil, err
	}

	info := Info{Trailer: trailer}
	if info.Escaped() {
		info.Literals = len(payload)
		info.DecodedSize = len(payload)
		return info, payload, nil
	}

	for pos := 0; pos < len(payload); {
		if payload[pos] != trailer.FlagByte {
			info.Literals++
			info.DecodedSize++
			pos++
			continue
		}

		_, length, next, err := parseToken(payload, pos, trailer.TextSafe)
		if err != nil {
			return Info{}, nil, err
		}
		info.Tokens++
		info.DecodedSize += length
		pos = next
	}
	return info, payload, nil
}

// Decode expands a buffer created by [Encode] and returns the original data in
// a new buffer.
//
// The format has no checksum, so corruption is only detected if it produces a
// structurally impossible token. A literal byte that was changed to the flag
// byte will be silently decoded as a token.
func Decode(compressed []byte) ([]byte, error) {
	// First pass: validate every token and figure out the output size so we
	// only allocate once.
	info, payload, err := inspect(compressed)
	if err != nil {
		return nil, err
	}

	output := make([]byte, info.DecodedSize)
	if info.Escaped() {
		copy(output, payload)
		return output, nil
	}

	// Second pass: expand. Tokens were validated above so parsing can't fail.
	cursor := 0
	for pos := 0; pos < len(payload); {
		if payload[pos] != info.FlagByte {
			output[cursor] = payload[pos]
			cursor++
			pos++
			continue
		}

		value, length, next, _ := parseToken(payload, pos, info.TextSafe)
		run := output[cursor : cursor+length]
		for i := range run {
			run[i] = value
		}
		cursor += length
		pos = next
	}
	return output, nil
}
