package directory

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// ErrUnauthorized matches rejections caused by a bad or missing credential.
var ErrUnauthorized = errors.New("directory: unauthorized")

// maxBodyInError bounds how much of a response body is quoted in errors.
const maxBodyInError = 300

// ConfigurationError reports a problem found before any network activity,
// or a collection that could not be resolved.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "directory: configuration error: " + e.Reason
}

// TransientServiceError is a retryable status returned by the service.
type TransientServiceError struct {
	StatusCode int
	URL        string
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("directory: retryable status %d on %s", e.StatusCode, e.URL)
}

// ServiceExhaustedError reports a call that kept failing transiently until
// the attempt budget ran out.
type ServiceExhaustedError struct {
	URL      string
	Attempts int
	Last     *TransientServiceError
}

func (e *ServiceExhaustedError) Error() string {
	return fmt.Sprintf("directory: gave up after %d attempts on %s", e.Attempts, e.URL)
}

func (e *ServiceExhaustedError) Unwrap() error {
	return e.Last
}

// ServiceRejectedError is a non-retryable, non-success status.
type ServiceRejectedError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *ServiceRejectedError) Error() string {
	return fmt.Sprintf("directory: %d on %s -> %s", e.StatusCode, e.URL, e.Body)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 and 403 rejections.
func (e *ServiceRejectedError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TransportError wraps a failure to reach the service at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("directory: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// truncateBody cuts body to at most maxBodyInError bytes without splitting
// a UTF-8 sequence.
func truncateBody(body []byte) string {
	if len(body) <= maxBodyInError {
		return string(body)
	}
	n := maxBodyInError
	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}
	return string(body[:n])
}
