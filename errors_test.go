package flagrle_test

import (
	"testing"

	"github.com/dargueta/flagrle"
	ferrors "github.com/dargueta/flagrle/errors"
	"github.com/stretchr/testify/assert"
)

func TestReexportedErrors(t *testing.T) {
	newErr := ferrors.ErrNoTextSafeByte.WithMessage("all characters used")
	assert.ErrorIs(t, newErr, flagrle.ErrNoTextSafeByte)
	assert.NotErrorIs(t, newErr, flagrle.ErrFlagByteCollision)

	wrapped := flagrle.ErrMalformedInput.Wrap(newErr)
	assert.Equal(
		t,
		"Malformed compressed input: No text-safe flag byte available: all characters used",
		wrapped.Error(),
	)
	assert.ErrorIs(t, wrapped, flagrle.ErrMalformedInput)
	assert.ErrorIs(t, wrapped, ferrors.ErrNoTextSafeByte)
}
