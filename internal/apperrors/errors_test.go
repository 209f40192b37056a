package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("User", 999)

	assert.Equal(t, "User with ID 999 not found.", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("update user: %w", err)))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("invalid user", map[string]string{
		"Surname":  "Surname is required.",
		"Forename": "Forename is required.",
	})

	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, "validation error: invalid user (Forename: Forename is required.; Surname: Surname is required.)", err.Error())
	assert.False(t, IsNotFound(err))
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageQueryError("select", "users", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query_failed")
	assert.Contains(t, err.Error(), "connection reset")
}
