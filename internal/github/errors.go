package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// APIError represents a non-2xx response from GitHub
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: API error %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an API error
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound checks if the error indicates a resource was not found
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// wrapError converts go-github error responses into APIError
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return newAPIError(rateLimitErr.Response, rateLimitErr.Message)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return newAPIError(abuseErr.Response, abuseErr.Message)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return newAPIError(ghErr.Response, ghErr.Message)
	}

	return err
}

func newAPIError(resp *http.Response, message string) *APIError {
	apiErr := &APIError{Message: message}
	if resp != nil {
		apiErr.StatusCode = resp.StatusCode
		if resp.Request != nil && resp.Request.URL != nil {
			apiErr.URL = resp.Request.URL.String()
		}
	}
	return apiErr
}
