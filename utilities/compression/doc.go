// Package compression provides stream wrappers around the flagrle codec.
//
// Disk and raster images are mostly dead space: large regions of a single byte
// value, usually null. Run-length encoding shrinks those regions to a handful of
// bytes each, and running gzip over the result squeezes out what's left. In
// experiments, an IBM 8" floppy image of 256,256 bytes run-length encodes to a
// few kilobytes, which gzip then takes down to under a hundred bytes.
//
// The codec works on whole buffers because the trailer at the end of the
// compressed data is needed before anything can be decoded. The stream
// functions here read their entire input before producing any output.
package compression
