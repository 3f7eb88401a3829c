package game

import "errors"

// Sentinel errors surfaced by the engine and the services built on it. Each
// maps to exactly one HTTP status in the API layer.
var (
	ErrInvalidInput  = errors.New("guess must be exactly 5 letters A-Z")
	ErrInvalidState  = errors.New("session is already finished")
	ErrQuotaExceeded = errors.New("daily game limit reached")
	ErrNotFound      = errors.New("not found")
	ErrNoWords       = errors.New("no secret words available")
)
