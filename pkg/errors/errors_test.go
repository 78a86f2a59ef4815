package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", Validation("name is required", nil), http.StatusBadRequest},
		{"conflict", Conflict("user already exists", nil), http.StatusBadRequest},
		{"invalid credentials", InvalidCredentials(), http.StatusBadRequest},
		{"unauthorized", Unauthorized("unauthorized"), http.StatusUnauthorized},
		{"forbidden", Forbidden("forbidden"), http.StatusForbidden},
		{"not found", NotFound("patient"), http.StatusNotFound},
		{"internal", Internal(fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(fmt.Errorf("connection refused"))
	assert.Equal(t, ErrInternal, appErr.Code)
	assert.Equal(t, "internal server error", appErr.Message)
}

func TestFromErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("doctor"))
	appErr := FromError(wrapped)
	assert.Equal(t, ErrNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
}
