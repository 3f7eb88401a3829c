package api

import (
	"errors"
	"net/http"

	"guess_the_word/internal/game"
	"guess_the_word/internal/service"
)

// statusFor maps the core sentinel errors onto HTTP statuses. Anything
// unrecognized is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, game.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal error details from clients.
func errorMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
