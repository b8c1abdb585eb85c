package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := NewValidationError("invalid mood")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "invalid mood", err.Error())

	wrapped := fmt.Errorf("create: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "invalid mood", ve.Reason)
}

func TestStorageError_PassesMessageThrough(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := &StorageError{Op: "create", Err: cause}

	assert.Equal(t, cause.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
}
