// Package flagbyte picks the sentinel byte that marks compressed runs.
//
// A flag byte must never occur in the literal payload, otherwise the decoder
// would mistake a literal for the start of a token. The selector therefore
// records which of the 256 byte values the input uses and picks one that is
// absent.
package flagbyte

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	ferrors "github.com/dargueta/flagrle/errors"
)

// None is the flag byte reported when every non-zero byte value occurs in the
// input. The encoder stores the input verbatim when it gets this value.
const None = byte(0)

const (
	// FirstTextSafe is the lowest byte value usable as a text-safe flag (`!`).
	FirstTextSafe = 33
	// LastTextSafe is the highest byte value usable as a text-safe flag (`~`).
	LastTextSafe = 126
)

// Occurrences records which byte values appear at least once in a buffer.
type Occurrences struct {
	seen bitmap.Bitmap
}

// Scan builds the occurrence set for `input`.
func Scan(input []byte) Occurrences {
	seen := bitmap.New(256)
	for _, b := range input {
		seen.Set(int(b), true)
	}
	return Occurrences{seen: seen}
}

// Contains returns true if `value` occurs in the scanned input.
func (o Occurrences) Contains(value byte) bool {
	return o.seen.Get(int(value))
}

// FirstAbsent returns the lowest value in [first, last] that doesn't occur in
// the input. The second return value is false if all of them occur.
func (o Occurrences) FirstAbsent(first, last int) (byte, bool) {
	for i := first; i <= last; i++ {
		if !o.seen.Get(i) {
			return byte(i), true
		}
	}
	return 0, false
}

// Select returns the flag byte to use when compressing `input`.
//
//   - If `custom` is non-zero it is returned as long as it doesn't occur in the
//     input; otherwise the call fails with [ferrors.ErrFlagByteCollision].
//   - In text-safe mode the lowest unused printable character from `!` to `~`
//     is returned, or [ferrors.ErrNoTextSafeByte] if there is none.
//   - Otherwise the lowest unused byte from 1 to 255 is returned. If every one
//     of them occurs, the result is [None] and no error. This isn't a failure:
//     the encoder handles it by storing the input uncompressed.
func Select(input []byte, textSafe bool, custom byte) (byte, error) {
	occurrences := Scan(input)

	if custom != None {
		if !occurrences.Contains(custom) {
			return custom, nil
		}
		return None, ferrors.ErrFlagByteCollision.WithMessage(
			fmt.Sprintf("cannot use 0x%02x as a flag byte", custom),
		)
	}

	if textSafe {
		flag, ok := occurrences.FirstAbsent(FirstTextSafe, LastTextSafe)
		if !ok {
			return None, ferrors.ErrNoTextSafeByte.WithMessage(
				fmt.Sprintf(
					"all characters from %q to %q occur in the input",
					rune(FirstTextSafe),
					rune(LastTextSafe),
				),
			)
		}
		return flag, nil
	}

	flag, ok := occurrences.FirstAbsent(1, 255)
	if !ok {
		return None, nil
	}
	return flag, nil
}

// IsTextSafe returns true if `value` is a printable ASCII character other than
// the space.
func IsTextSafe(value byte) bool {
	return value >= FirstTextSafe && value <= LastTextSafe
}
