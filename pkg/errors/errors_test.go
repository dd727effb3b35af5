package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", InvalidCredentials())

	assert.True(t, Is(err, CodeInvalidCredentials))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))
}

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Mission", nil).Status)
	assert.Equal(t, "Mission not found", NotFound("Mission", nil).Message)
	assert.Equal(t, http.StatusUnauthorized, InvalidCredentials().Status)
	assert.Equal(t, "Identifiants incorrects", InvalidCredentials().Message)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("slow down", 0).Status)
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Internal("Failed to save snapshot", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCodeForStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:            CodeBadRequest,
		http.StatusUnauthorized:          CodeUnauthorized,
		http.StatusForbidden:             CodeForbidden,
		http.StatusNotFound:              CodeNotFound,
		http.StatusMethodNotAllowed:      CodeMethodNotAllowed,
		http.StatusRequestEntityTooLarge: CodeBadRequest,
		http.StatusTooManyRequests:       CodeTooManyRequests,
		http.StatusInternalServerError:   CodeInternal,
		http.StatusServiceUnavailable:    CodeInternal,
	}
	for status, want := range tests {
		assert.Equal(t, want, CodeForStatus(status), "status %d", status)
	}
}
