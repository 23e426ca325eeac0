package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// HTTPStatusError pins the HTTP status a failure is reported with.
type HTTPStatusError struct {
	StatusCode  int
	Message     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Message:     message,
		OriginalErr: originalErr,
	}
}

// NewClusterUnavailableError reports a missing cluster client as 503; the
// process can serve again once it is configured with cluster access.
func NewClusterUnavailableError(originalErr error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusServiceUnavailable, "Kubernetes API is not configured", originalErr)
}

func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
