package flagrle

import (
	"fmt"

	"github.com/dargueta/flagrle/flagbyte"
)

// DropInFlagByte is the fixed flag byte used by [DropInOptions].
const DropInFlagByte = byte(1)

// FlagByteFromChar converts a one-byte string to a flag byte. NUL is rejected
// since a flag byte of 0 means "pick one automatically".
//
// Like the string functions in this package, the string is treated as raw
// bytes: "é" is two bytes in UTF-8 and is rejected, "\xe9" is accepted.
func FlagByteFromChar(char string) (byte, error) {
	if len(char) != 1 || char[0] == 0 {
		return 0, ErrInvalidArgument.WithMessage(
			fmt.Sprintf("flag character must be a single non-NUL byte, got %q", char),
		)
	}
	return char[0], nil
}

// IsTextSafeFlag returns true if `flag` keeps text-safe output printable.
func IsTextSafeFlag(flag byte) bool {
	return flagbyte.IsTextSafe(flag)
}
