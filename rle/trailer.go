package rle

import (
	"fmt"

	ferrors "github.com/dargueta/flagrle/errors"
)

// TrailerSize is the number of bytes appended to every compressed buffer.
const TrailerSize = 2

const (
	binaryIndicator   = '0'
	textSafeIndicator = '1'
)

// Trailer describes how the payload in front of it was encoded.
type Trailer struct {
	// FlagByte marks the start of a token. 0 means the payload is stored
	// uncompressed.
	FlagByte byte
	// TextSafe is true if tokens spell their run length out in decimal.
	TextSafe bool
}

// Bytes returns the serialized form of the trailer.
func (t Trailer) Bytes() [TrailerSize]byte {
	indicator := byte(binaryIndicator)
	if t.TextSafe {
		indicator = textSafeIndicator
	}
	return [TrailerSize]byte{t.FlagByte, indicator}
}

// ReadTrailer parses the trailer at the end of `compressed` and returns it
// along with the payload preceding it. The payload shares memory with
// `compressed`.
func ReadTrailer(compressed []byte) (Trailer, []byte, error) {
	if len(compressed) < TrailerSize {
		return Trailer{}, nil, ferrors.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"need at least %d bytes for the trailer, got %d",
				TrailerSize,
				len(compressed),
			),
		)
	}

	payloadSize := len(compressed) - TrailerSize
	trailer := Trailer{FlagByte: compressed[payloadSize]}

	switch indicator := compressed[payloadSize+1]; indicator {
	case binaryIndicator:
		trailer.TextSafe = false
	case textSafeIndicator:
		trailer.TextSafe = true
	default:
		return Trailer{}, nil, ferrors.ErrMalformedInput.WithMessage(
			fmt.Sprintf("unrecognized encoding indicator %q in trailer", indicator),
		)
	}
	return trailer, compressed[:payloadSize], nil
}
