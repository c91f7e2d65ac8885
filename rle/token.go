package rle

import (
	"encoding/binary"
	"fmt"
	"strconv"

	ferrors "github.com/dargueta/flagrle/errors"
)

const (
	// BinaryTokenSize is the size of a binary token in bytes.
	BinaryTokenSize = 4
	// textSafeHeaderSize covers the flag, the repeated byte and the digit count.
	textSafeHeaderSize = 3
	// maxDigits is the number of decimal digits in [MaxRunLength].
	maxDigits = 5
	// MaxTokenSize is the largest token either layout produces.
	MaxTokenSize = textSafeHeaderSize + maxDigits
)

// DigitCount returns the number of decimal digits needed to write `length`.
func DigitCount(length int) int {
	digits := 1
	for length >= 10 {
		length /= 10
		digits++
	}
	return digits
}

// TokenSize returns the number of bytes a token for a run of `length` takes.
func TokenSize(length int, textSafe bool) int {
	if textSafe {
		return textSafeHeaderSize + DigitCount(length)
	}
	return BinaryTokenSize
}

// ShouldCompress returns true if a run of `length` bytes is replaced by a token.
// Shorter runs are cheaper, or no more expensive, as literals.
func ShouldCompress(length int, textSafe bool) bool {
	return length > TokenSize(length, textSafe)
}

// appendToken appends the token for `run` to `dst`.
func appendToken(dst []byte, flag byte, run ByteRun, textSafe bool) []byte {
	dst = append(dst, flag, run.Byte)
	if !textSafe {
		return binary.LittleEndian.AppendUint16(dst, uint16(run.RunLength))
	}

	dst = append(dst, '0'+byte(DigitCount(run.RunLength)))
	return strconv.AppendUint(dst, uint64(run.RunLength), 10)
}

// parseToken decodes the token whose flag byte is at payload[pos]. It returns
// the repeated byte, the run length, and the index just past the token.
func parseToken(payload []byte, pos int, textSafe bool) (byte, int, int, error) {
	if textSafe {
		return parseTextSafeToken(payload, pos)
	}

	if pos+BinaryTokenSize > len(payload) {
		return 0, 0, 0, truncatedToken(payload, pos)
	}
	length := int(binary.LittleEndian.Uint16(payload[pos+2:]))
	if length == 0 {
		return 0, 0, 0, ferrors.ErrMalformedInput.WithMessage(
			fmt.Sprintf("token at offset %d has a run length of zero", pos),
		)
	}
	return payload[pos+1], length, pos + BinaryTokenSize, nil
}

func parseTextSafeToken(payload []byte, pos int) (byte, int, int, error) {
	if pos+textSafeHeaderSize > len(payload) {
		return 0, 0, 0, truncatedToken(payload, pos)
	}

	digitCountChar := payload[pos+2]
	if digitCountChar < '1' || digitCountChar > '0'+maxDigits {
		return 0, 0, 0, ferrors.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"token at offset %d has invalid digit count %q", pos, digitCountChar),
		)
	}

	digitsStart := pos + textSafeHeaderSize
	digitsEnd := digitsStart + int(digitCountChar-'0')
	if digitsEnd > len(payload) {
		return 0, 0, 0, truncatedToken(payload, pos)
	}

	length := 0
	for _, digit := range payload[digitsStart:digitsEnd] {
		if digit < '0' || digit > '9' {
			return 0, 0, 0, ferrors.ErrMalformedInput.WithMessage(
				fmt.Sprintf("token at offset %d has non-digit %q in its length", pos, digit),
			)
		}
		length = length*10 + int(digit-'0')
	}

	if length == 0 || length > MaxRunLength {
		return 0, 0, 0, ferrors.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"token at offset %d has run length %d, not in [1, %d]",
				pos,
				length,
				MaxRunLength,
			),
		)
	}
	return payload[pos+1], length, digitsEnd, nil
}

func truncatedToken(payload []byte, pos int) error {
	return ferrors.ErrMalformedInput.WithMessage(
		fmt.Sprintf(
			"token at offset %d runs past the end of the %d-byte payload",
			pos,
			len(payload),
		),
	)
}
