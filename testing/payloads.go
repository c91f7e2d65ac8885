package testing

import (
	"crypto/rand"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// RandomBytes returns `size` bytes of random data. It is guaranteed to either
// return a valid slice or fail the test and abort.
func RandomBytes(t *testing.T, size int) []byte {
	data := make([]byte, size)

	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// SparseImage returns a mostly-empty image of `size` bytes, the kind of data the
// codec is meant for. Roughly one byte in `spacing` starts a short stretch of
// non-zero bytes; everything else is null. The same seed gives the same image.
func SparseImage(size, spacing int, seed int64) []byte {
	rng := mathrand.New(mathrand.NewSource(seed))
	image := make([]byte, size)

	for i := 0; i < size; i++ {
		if rng.Intn(spacing) != 0 {
			continue
		}
		value := byte(rng.Intn(255) + 1)
		end := i + rng.Intn(16) + 1
		for ; i < end && i < size; i++ {
			image[i] = value
		}
	}
	return image
}

// AllByteValues returns every byte value from `first` to 255 once, in order.
// With `first` = 1 this leaves no byte free to be a flag.
func AllByteValues(first int) []byte {
	result := make([]byte, 0, 256-first)
	for i := first; i < 256; i++ {
		result = append(result, byte(i))
	}
	return result
}

// TextOnly returns `size` bytes of printable ASCII, with runs of varying length.
func TextOnly(size int, seed int64) []byte {
	rng := mathrand.New(mathrand.NewSource(seed))
	text := make([]byte, 0, size)

	for len(text) < size {
		value := byte(rng.Intn('~'-'a'+1) + 'a')
		runLength := rng.Intn(40) + 1
		for j := 0; j < runLength && len(text) < size; j++ {
			text = append(text, value)
		}
	}
	return text
}
