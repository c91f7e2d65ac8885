// Package errors defines the failures reported by the flagrle codec.
//
// Every error is derived from a string-backed root so callers can test for the
// category with the standard library's errors.Is, no matter how much context
// was attached along the way.
package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

// ErrFlagByteCollision is returned when a caller-supplied flag byte already
// occurs in the input.
var ErrFlagByteCollision = rootError.WithMessage("Flag byte occurs in input")

// ErrNoTextSafeByte is returned when text-safe mode was requested but every
// printable ASCII character (33 through 126) already occurs in the input.
var ErrNoTextSafeByte = rootError.WithMessage("No text-safe flag byte available")

// ErrMalformedInput is returned by the decoder when the compressed buffer could
// not have been produced by the encoder.
var ErrMalformedInput = rootError.WithMessage("Malformed compressed input")

var ErrInvalidArgument = rootError.WithMessage("Invalid argument")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
