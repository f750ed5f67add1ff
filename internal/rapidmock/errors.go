package rapidmock

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a detail request succeeds but carries no record.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidStatus is returned for list statuses other than Watched and To Watch.
	ErrInvalidStatus = errors.New("invalid list status")

	// ErrResponseTooLarge is returned when a response body exceeds the read limit.
	ErrResponseTooLarge = errors.New("response too large")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}
