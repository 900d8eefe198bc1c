package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrNetwork indicates the upstream API is unreachable
	ErrNetwork = errors.New("network error, check your connection")

	// ErrNotFound indicates the requested item does not exist upstream
	ErrNotFound = errors.New("no matching titles found")
)

// ValidationError indicates caller misuse: a search term that is too
// short, an empty item id, and so on. It is never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UpstreamError carries a failure message reported by the metadata
// API itself (invalid key, too many results, ...).
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: %s", e.Message)
}

// IsValidation reports whether err is a caller-input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
