// Package rle implements the flag-byte run-length format used by flagrle.
//
// Runs of identical bytes are replaced by a token introduced by a flag byte, a
// byte value that doesn't occur anywhere in the uncompressed data. Everything
// that isn't a token is copied through as-is. There are two token layouts:
//
// Binary tokens are four bytes: the flag, the repeated byte, and the run length
// as an unsigned 16-bit little-endian integer. A run is only turned into a token
// if it's longer than four bytes.
//
//	W XXXXXXXXXXXXXXX Y ZZ
//	W F X 0F 00       Y ZZ
//
// Text-safe tokens spell the run length out in decimal so a token is made only
// of printable characters, as long as the repeated byte is printable too. The
// flag and repeated byte are followed by one digit giving the number of digits
// in the length, then the digits themselves. Nine "a" with flag ">" become
// `>a19`. A run is turned into a token only if it's longer than the token.
//
// Every compressed buffer ends in a two-byte trailer: the flag byte followed by
// '1' for text-safe tokens or '0' for binary ones. A flag byte of 0 means no
// byte value was free to serve as a flag, and the payload is the original data
// stored uncompressed.
//
// Run lengths are limited to 65535, the largest value the binary length field
// holds. Longer runs are split into consecutive runs of the same byte.
package rle
