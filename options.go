package flagrle

// Options controls how data is compressed. The zero value is the default:
// binary tokens and an automatically chosen flag byte.
type Options struct {
	// TextSafe selects the text-safe token layout, which only uses printable
	// ASCII for flag bytes and run lengths.
	TextSafe bool
	// FlagByte is the byte used to mark tokens. 0 picks the lowest byte value
	// that doesn't occur in the input. A non-zero value that does occur in the
	// input makes compression fail with [ErrFlagByteCollision].
	FlagByte byte
}

// DefaultOptions compresses with binary tokens and an automatic flag byte.
var DefaultOptions = Options{}

// TextSafeOptions compresses with text-safe tokens and an automatic flag byte.
var TextSafeOptions = Options{TextSafe: true}

// DropInOptions compresses with binary tokens and a fixed flag byte of 1, for
// callers who know their data never contains that byte.
var DropInOptions = FixedFlagOptions(DropInFlagByte)

// FixedFlagOptions returns options for binary tokens using `flag` as the flag
// byte.
func FixedFlagOptions(flag byte) Options {
	return Options{FlagByte: flag}
}

// WithTextSafe returns a copy of the options with text-safe mode set.
func (o Options) WithTextSafe(textSafe bool) Options {
	o.TextSafe = textSafe
	return o
}

// WithFlagByte returns a copy of the options with the given flag byte.
func (o Options) WithFlagByte(flag byte) Options {
	o.FlagByte = flag
	return o
}
