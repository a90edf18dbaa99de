package mal

import (
	"errors"
	"fmt"
)

// Sentinel errors for MyAnimeList API responses.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidClientID is returned when MAL rejects the client ID.
	ErrInvalidClientID = errors.New("invalid or unauthorized client id")

	// ErrRateLimited is returned when MAL throttles the request.
	ErrRateLimited = errors.New("rate limited: too many requests")
)

// APIError is a non-2xx MAL response that does not map to a sentinel.
// The message is taken from the error body when MAL provides one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("MAL API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("MAL API error %d", e.StatusCode)
}
