// Package flagrle is a run-length codec for data dominated by long runs of a
// single byte, such as images with large uniform regions.
//
// Runs are replaced by tokens introduced by a flag byte, a byte value chosen
// per call so that it never occurs in the data being compressed. A two-byte
// trailer records the flag byte and token layout, so compressed data describes
// itself and [Decompress] needs no options. See package rle for the exact
// format.
//
// Data containing every byte value from 1 to 255 has no free flag byte. In
// binary mode it's stored as-is with a trailer; in text-safe mode the flag byte
// must be printable, and compression fails if all of them are taken.
//
// All functions are pure: they never modify their input and always return a
// newly allocated buffer, so they're safe to call from multiple goroutines.
package flagrle
