package flagrle

import (
	ferrors "github.com/dargueta/flagrle/errors"
)

// Re-exported so callers don't need to import the errors package to check what
// went wrong.
var (
	ErrFlagByteCollision = ferrors.ErrFlagByteCollision
	ErrNoTextSafeByte    = ferrors.ErrNoTextSafeByte
	ErrMalformedInput    = ferrors.ErrMalformedInput
	ErrInvalidArgument   = ferrors.ErrInvalidArgument
)
