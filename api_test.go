package flagrle_test

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/dargueta/flagrle"
	ftesting "github.com/dargueta/flagrle/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CompressTestCase struct {
	Name           string
	Input          []byte
	Options        flagrle.Options
	ExpectedOutput []byte
}

func TestCompress__Basic(t *testing.T) {
	tests := []CompressTestCase{
		{"empty", []byte{}, flagrle.DefaultOptions, []byte{}},
		{"five bytes unchanged", []byte{40, 40, 40, 40, 40}, flagrle.DefaultOptions, []byte{40, 40, 40, 40, 40}},
		{
			"six bytes",
			[]byte{40, 40, 40, 40, 40, 40},
			flagrle.DefaultOptions,
			[]byte{1, 40, 6, 0, 1, '0'},
		},
		{
			"flag skips used bytes",
			[]byte{1, 2, 40, 40, 40, 40, 40, 40},
			flagrle.DefaultOptions,
			[]byte{1, 2, 3, 40, 6, 0, 3, '0'},
		},
		{
			"text-safe custom flag",
			[]byte("aaaaaaaaa"),
			flagrle.TextSafeOptions.WithFlagByte('>'),
			[]byte(">a19>1"),
		},
		{
			"text-safe automatic flag",
			[]byte("aaaaaaaaa"),
			flagrle.TextSafeOptions,
			[]byte("!a19!1"),
		},
		{
			"two kinds",
			[]byte("aaaaabbbbb"),
			flagrle.DefaultOptions,
			[]byte{1, 'a', 5, 0, 1, 'b', 5, 0, 1, '0'},
		},
		{
			"drop-in",
			[]byte("caaaaacbbbbbc"),
			flagrle.DropInOptions,
			[]byte{'c', 1, 'a', 5, 0, 'c', 1, 'b', 5, 0, 'c', 1, '0'},
		},
		{
			"escape path",
			ftesting.AllByteValues(1),
			flagrle.DefaultOptions,
			append(ftesting.AllByteValues(1), 0, '0'),
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				output, err := flagrle.Compress(test.Input, test.Options)
				require.NoError(t, err)
				assert.Equal(t, test.ExpectedOutput, output)
			},
		)
	}
}

// Compressed sizes for strings ending in a variety of ways.
func TestCompressString__Lengths(t *testing.T) {
	tests := map[string]int{
		"":                      0,
		"aaa":                   3,
		"aaaa":                  4,
		"aaaaa":                 5,
		"aaaaaa":                6,
		repeatedString('a', 39): 6,
		"aaaaab":                7,
		"baaaaa":                7,
		"baaaaab":               8,
		"aaaaabbbbb":            10,
		"caaaaabbbbbc":          12,
		"caaaaacbbbbbc":         13,
	}

	for input, expectedLength := range tests {
		t.Run(
			fmt.Sprintf("%q", input),
			func(t *testing.T) {
				output, err := flagrle.CompressString(input, flagrle.DefaultOptions)
				require.NoError(t, err)
				assert.Equal(t, expectedLength, len(output))

				restored, err := flagrle.DecompressString(output)
				require.NoError(t, err)
				assert.Equal(t, input, restored)
			},
		)
	}
}

func repeatedString(char byte, count int) string {
	return string(bytes.Repeat([]byte{char}, count))
}

func TestCompress__Errors(t *testing.T) {
	_, err := flagrle.Compress([]byte("abcdef>"), flagrle.FixedFlagOptions('>'))
	assert.ErrorIs(t, err, flagrle.ErrFlagByteCollision)

	_, err = flagrle.Compress(ftesting.AllByteValues(0), flagrle.TextSafeOptions)
	assert.ErrorIs(t, err, flagrle.ErrNoTextSafeByte)

	_, err = flagrle.Compress([]byte{1, 1, 1, 1, 1, 1, 1}, flagrle.DropInOptions)
	assert.ErrorIs(t, err, flagrle.ErrFlagByteCollision)

	// Below the size threshold nothing is checked.
	output, err := flagrle.Compress([]byte("ab>"), flagrle.FixedFlagOptions('>'))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab>"), output)
}

func TestCompress__DoesNotModifyInput(t *testing.T) {
	input := bytes.Repeat([]byte{7}, 100)
	original := bytes.Clone(input)

	output, err := flagrle.Compress(input, flagrle.DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, original, input)

	short := []byte{1, 2, 3}
	output, err = flagrle.Compress(short, flagrle.DefaultOptions)
	require.NoError(t, err)
	output[0] = 99
	assert.EqualValues(t, 1, short[0], "short output shares memory with input")
}

func TestDecompress__ShortInputsUnchanged(t *testing.T) {
	for size := 0; size < flagrle.MinCompressSize; size++ {
		input := bytes.Repeat([]byte{'x'}, size)
		output, err := flagrle.Decompress(input)
		require.NoError(t, err)
		assert.Equal(t, input, output, "size %d", size)
	}
}

func TestDecompress__Malformed(t *testing.T) {
	_, err := flagrle.Decompress([]byte{'a', 'b', 1, 'c', 1, '0'})
	assert.ErrorIs(t, err, flagrle.ErrMalformedInput)

	_, err = flagrle.DecompressString("abcdefg")
	assert.ErrorIs(t, err, flagrle.ErrMalformedInput)
}

////////////////////////////////////////////////////////////////////////////////
// Round trips

type roundTripData struct {
	Name string
	Data []byte
}

func roundTripPayloads(t *testing.T) []roundTripData {
	return []roundTripData{
		{"empty", []byte{}},
		{"five", []byte("aaaaa")},
		{"six", []byte("aaaaaa")},
		{"homogenous", bytes.Repeat([]byte{100}, 9174)},
		{"heterogenous", ftesting.RandomBytes(t, 119)},
		{"random large", ftesting.RandomBytes(t, 20000)},
		{"sparse", ftesting.SparseImage(256256, 900, 1)},
		{"text", ftesting.TextOnly(5000, 2)},
		{"all values", ftesting.AllByteValues(1)},
		{"all values then a run", append(ftesting.AllByteValues(0), make([]byte, 90)...)},
		{"over max run", bytes.Repeat([]byte{'q'}, 200000)},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, payload := range roundTripPayloads(t) {
		for _, options := range []flagrle.Options{flagrle.DefaultOptions, flagrle.TextSafeOptions} {
			t.Run(
				fmt.Sprintf("%s/textsafe=%t", payload.Name, options.TextSafe),
				func(t *testing.T) {
					compressed, err := flagrle.Compress(payload.Data, options)
					if options.TextSafe && err != nil {
						// Random data can use up every printable character.
						assert.ErrorIs(t, err, flagrle.ErrNoTextSafeByte)
						return
					}
					require.NoError(t, err)
					t.Logf("compressed %d -> %d", len(payload.Data), len(compressed))
					assert.LessOrEqual(t, len(compressed), len(payload.Data)+2)

					decompressed, err := flagrle.Decompress(compressed)
					require.NoError(t, err)
					assert.True(t, bytes.Equal(payload.Data, decompressed), "data doesn't match")
				},
			)
		}
	}
}

func TestRoundTrip__EveryCustomFlag(t *testing.T) {
	data := ftesting.SparseImage(4096, 50, 3)
	for flag := 1; flag < 256; flag++ {
		if bytes.IndexByte(data, byte(flag)) >= 0 {
			continue
		}
		for _, textSafe := range []bool{false, true} {
			options := flagrle.Options{FlagByte: byte(flag), TextSafe: textSafe}
			compressed := ftesting.MustCompress(t, data, options)
			decompressed, err := flagrle.Decompress(compressed)
			require.NoError(t, err, "flag=%d textSafe=%t", flag, textSafe)
			require.True(t, bytes.Equal(data, decompressed), "flag=%d textSafe=%t", flag, textSafe)
		}
	}
}

func TestTextSafeOutputIsPrintable(t *testing.T) {
	data := ftesting.TextOnly(10000, 4)
	compressed := ftesting.MustCompress(t, data, flagrle.TextSafeOptions)
	for i, b := range compressed {
		require.Truef(t, b >= ' ' && b <= '~', "byte %d of output is 0x%02x", i, b)
	}
}

func TestCodec(t *testing.T) {
	codec := flagrle.NewCodec(flagrle.TextSafeOptions.WithFlagByte('>'))

	compressed, err := codec.CompressString("aaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, ">a19>1", compressed)

	restored, err := codec.DecompressString(compressed)
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaaa", restored)

	data := ftesting.SparseImage(10000, 100, 5)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			packed, err := codec.Compress(data)
			if !assert.NoError(t, err) {
				return
			}
			unpacked, err := codec.Decompress(packed)
			assert.NoError(t, err)
			assert.True(t, bytes.Equal(data, unpacked))
		}()
	}
	wg.Wait()
}

func TestInspect(t *testing.T) {
	compressed := ftesting.MustCompress(t, []byte("caaaaacbbbbbc"), flagrle.DefaultOptions)
	info, err := flagrle.Inspect(compressed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.FlagByte)
	assert.Equal(t, 2, info.Tokens)
	assert.Equal(t, 3, info.Literals)
	assert.Equal(t, 13, info.DecodedSize)

	info, err = flagrle.Inspect([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, info.DecodedSize)
	assert.Equal(t, 0, info.Tokens)
}

func TestLoadFixture(t *testing.T) {
	image := ftesting.SparseImage(8192, 300, 6)
	stream := ftesting.LoadFixture(
		t, ftesting.MustCompress(t, image, flagrle.DefaultOptions), len(image))

	_, err := stream.Seek(4096, io.SeekStart)
	require.NoError(t, err)
	buffer := make([]byte, 16)
	_, err = io.ReadFull(stream, buffer)
	require.NoError(t, err)
	assert.Equal(t, image[4096:4112], buffer)
}

func TestFlagByteFromChar(t *testing.T) {
	flag, err := flagrle.FlagByteFromChar(">")
	require.NoError(t, err)
	assert.EqualValues(t, '>', flag)
	assert.True(t, flagrle.IsTextSafeFlag(flag))

	for _, bad := range []string{"", "ab", "\x00", "é"} {
		_, err := flagrle.FlagByteFromChar(bad)
		assert.ErrorIs(t, err, flagrle.ErrInvalidArgument, "%q", bad)
	}
}
