package testing

import (
	"io"
	"testing"

	"github.com/dargueta/flagrle"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadFixture takes compressed data and returns a stream to access the
// decompressed bytes.
//
//   - Writes to the stream do not affect `compressed`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadFixture(t *testing.T, compressed []byte, expectedSize int) io.ReadWriteSeeker {
	require.Greater(t, len(compressed), 0, "compressed fixture is empty")

	data, err := flagrle.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, expectedSize, len(data), "decompressed fixture is wrong size")
	return bytesextra.NewReadWriteSeeker(data)
}

// MustCompress compresses `data` with `options` or fails the test.
func MustCompress(t *testing.T, data []byte, options flagrle.Options) []byte {
	compressed, err := flagrle.Compress(data, options)
	require.NoErrorf(t, err, "failed to compress %d bytes with %+v", len(data), options)
	return compressed
}
