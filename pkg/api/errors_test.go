package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxishq/praxis/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("message", "must not be empty"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped validation error",
			err:      fmt.Errorf("chat turn: %w", services.NewValidationError("message", "too long")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "forbidden",
			err:      services.ErrForbidden,
			expected: http.StatusForbidden,
		},
		{
			name:     "trajectory completed",
			err:      services.ErrTrajectoryCompleted,
			expected: http.StatusConflict,
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			expected: http.StatusConflict,
		},
		{
			name:     "unavailable",
			err:      fmt.Errorf("generation failed: %w", services.ErrUnavailable),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.expected, httpErr.Code)
		})
	}
}
