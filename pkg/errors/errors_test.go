package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorPreservesTypedErrors(t *testing.T) {
	err := fmt.Errorf("context: %w", Clone(ErrUnauthorized, ""))
	e := FromError(err)
	assert.Equal(t, ErrUnauthorized.Code, e.Code)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	e := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, e.Code)
	assert.ErrorContains(t, e, "boom")
}

func TestIsAuthFailure(t *testing.T) {
	assert.True(t, IsAuthFailure(Clone(ErrUnauthorized, "")))
	assert.False(t, IsAuthFailure(Clone(ErrValidation, "")))
	assert.False(t, IsAuthFailure(nil))
}

func TestIsConnectionDistinguishesTaxonomy(t *testing.T) {
	conn := Wrap(errors.New("dial tcp: refused"), ErrConnection.Code, ErrConnection.Status, ErrConnection.Message)
	assert.True(t, IsConnection(conn))
	assert.False(t, IsConnection(Clone(ErrValidation, "bad due_date")))
}

func TestCloneOverridesMessage(t *testing.T) {
	c := Clone(ErrValidation, "title is required")
	assert.Equal(t, "title is required", c.Message)
	assert.Equal(t, ErrValidation.Code, c.Code)
	assert.Equal(t, "validation failed", ErrValidation.Message, "original untouched")
}
