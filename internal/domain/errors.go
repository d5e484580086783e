package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the application. The CLI maps them to exit codes.
var (
	// ErrUsage indicates the command was invoked without an organization.
	ErrUsage = errors.New("organization argument is required")

	// ErrRequest indicates the API answered with an error status.
	ErrRequest = errors.New("api request failed")

	// ErrRateLimit indicates the API rate limit is exhausted.
	ErrRateLimit = errors.New("api query limit exceeded")

	// ErrNetworkFailure indicates the API could not be reached at all.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrMalformedResponse indicates the API returned data the application cannot use.
	ErrMalformedResponse = errors.New("malformed api response")

	// ErrTooManyPages indicates the repository listing never returned an empty page.
	ErrTooManyPages = errors.New("too many repository pages")
)

// RequestError is returned when the API responds with an error status.
type RequestError struct {
	StatusCode  int
	Endpoint    string
	RateLimited bool
	Err         error
}

func (e *RequestError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("%s: rate limited (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is makes every RequestError match ErrRequest, and rate limited ones ErrRateLimit.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrRequest:
		return true
	case ErrRateLimit:
		return e.RateLimited
	}
	return false
}
