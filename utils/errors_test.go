package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(NotFoundError("Deal not found", nil)))
	assert.True(t, IsNotFoundError(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", gorm.ErrRecordNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(errors.New("connection refused")))
	assert.False(t, IsNotFoundError(BadRequestError("bad input", nil)))
	assert.False(t, IsNotFoundError(ConflictError("already booked", nil)))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignored"))

	base := errors.New("dial tcp: connection refused")
	wrapped := WrapError(base, "failed to send email")
	require.Error(t, wrapped)
	assert.Equal(t, "failed to send email: dial tcp: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("row locked")
	appErr := NewAppError(500, "Failed to create booking", cause)

	assert.Equal(t, "Failed to create booking: row locked", appErr.Error())
	assert.ErrorIs(t, appErr, cause)

	bare := NotFoundError("Business not found", nil)
	assert.Equal(t, "Business not found", bare.Error())
	assert.Equal(t, bare, GetAppError(bare))
	assert.Nil(t, GetAppError(errors.New("plain")))
}
