package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidationError("bad input"), "VALIDATION_FAILED", http.StatusBadRequest},
		{"duplicate email", NewDuplicateEmail(), "DUPLICATE_EMAIL", http.StatusBadRequest},
		{"not found", NewNotFound("User"), "NOT_FOUND", http.StatusNotFound},
		{"unauthorized", NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{"upload rejected", NewUploadRejected("nope"), "UPLOAD_REJECTED", http.StatusBadRequest},
		{"internal", NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	de := ToDomainError(NewNotFound("User"))
	assert.Equal(t, "User not found", de.Message)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)

	wrapped := fmt.Errorf("lookup: %w", pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", ToDomainError(wrapped).Code)
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("Admin access required")
	de := ToDomainError(fmt.Errorf("handler: %w", original))
	assert.Equal(t, "FORBIDDEN", de.Code)
	assert.Equal(t, "Admin access required", de.Message)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("connection reset")
	de := ToDomainError(cause)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, cause)

	assert.Nil(t, ToDomainError(nil))
}
