package errors

import (
	"context"
	"net/http"
	"testing"

	"personbench/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsCodes(t *testing.T) {
	withDetails := ErrValidationFailed.WithDetails("age must be >= 0")

	assert.Equal(t, http.StatusBadRequest, withDetails.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", withDetails.ErrorCode())
	assert.Equal(t, "age must be >= 0", withDetails.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageStillMatchesAppError(t *testing.T) {
	err := ErrPersonCreationFailed.WrapMessage("insert person")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Contains(t, err.Error(), "insert person")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	err := NewDatabaseExecuteError(context.Canceled, "list persons")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "list persons", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	withDetails := ErrValidationFailed.WithDetails("name is required")

	assert.True(t, errors.Is(withDetails, ErrValidationFailed))
	assert.True(t, errors.Is(errors.Wrap(withDetails, "create person"), ErrValidationFailed))
	assert.False(t, errors.Is(withDetails, ErrSessionUnavailable))
}
