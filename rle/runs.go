package rle

import (
	"io"
)

// MaxRunLength is the longest run a single token can describe.
const MaxRunLength = 65535

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates the end of the data was reached.
	RunLength int
	// Offset is the index of the first byte of the run in the scanned data.
	Offset int
}

// InvalidRun is returned by [RunScanner.NextRun] once the data is exhausted.
var InvalidRun = ByteRun{}

// RunScanner splits a byte slice into maximal runs of identical bytes, left to
// right. Runs longer than [MaxRunLength] are split; the next run starts with
// the same byte value.
type RunScanner struct {
	data []byte
	pos  int
}

func NewRunScanner(data []byte) *RunScanner {
	return &RunScanner{data: data}
}

// NextRun returns a [ByteRun] for the next byte or run of byte values in the
// data. It returns [InvalidRun] and io.EOF when there's nothing left.
func (scanner *RunScanner) NextRun() (ByteRun, error) {
	if scanner.pos >= len(scanner.data) {
		return InvalidRun, io.EOF
	}

	start := scanner.pos
	firstByte := scanner.data[start]
	end := start + 1
	for end < len(scanner.data) && scanner.data[end] == firstByte && end-start < MaxRunLength {
		end++
	}

	scanner.pos = end
	return ByteRun{Byte: firstByte, RunLength: end - start, Offset: start}, nil
}
