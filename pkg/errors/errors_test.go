package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneKeepsCodeAndStatus(t *testing.T) {
	clone := Clone(ErrNotFound, "vehicle with ID: '3' not found")
	require.NotNil(t, clone)
	assert.Equal(t, ErrNotFound.Code, clone.Code)
	assert.Equal(t, http.StatusNotFound, clone.Status)
	assert.Equal(t, "vehicle with ID: '3' not found", clone.Error())
	assert.Equal(t, "resource not found", ErrNotFound.Message)
	assert.True(t, errors.Is(clone, ErrNotFound))
	assert.False(t, errors.Is(clone, ErrValidation))
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)

	wrapped := fmt.Errorf("outer: %w", Clone(ErrMethodNotAllowed, "refused"))
	assert.Equal(t, http.StatusMethodNotAllowed, FromError(wrapped).Status)
	assert.Equal(t, http.StatusMethodNotAllowed, StatusOf(wrapped))
	assert.Equal(t, http.StatusOK, StatusOf(nil))
}
