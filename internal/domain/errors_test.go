package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError_Is(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		isRequest   bool
		isRateLimit bool
	}{
		{
			name:        "rate limited",
			err:         &RequestError{StatusCode: 403, Endpoint: "orgs/acme/repos", RateLimited: true, Err: errors.New("limit")},
			isRequest:   true,
			isRateLimit: true,
		},
		{
			name:      "server error",
			err:       &RequestError{StatusCode: 500, Endpoint: "repos/acme/web/pulls", Err: errors.New("boom")},
			isRequest: true,
		},
		{
			name:        "wrapped rate limited",
			err:         fmt.Errorf("failed to list repositories: %w", &RequestError{StatusCode: 429, RateLimited: true, Err: errors.New("slow down")}),
			isRequest:   true,
			isRateLimit: true,
		},
		{
			name: "network failure",
			err:  fmt.Errorf("failed to list repositories: %w", ErrNetworkFailure),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isRequest, errors.Is(tc.err, ErrRequest))
			assert.Equal(t, tc.isRateLimit, errors.Is(tc.err, ErrRateLimit))
		})
	}
}

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{StatusCode: 403, Endpoint: "orgs/acme/repos", RateLimited: true, Err: errors.New("API rate limit exceeded")}
	assert.Equal(t, "orgs/acme/repos: rate limited (status 403): API rate limit exceeded", err.Error())

	err = &RequestError{StatusCode: 404, Endpoint: "repos/acme/web/pulls", Err: errors.New("Not Found")}
	assert.Equal(t, "repos/acme/web/pulls: status 404: Not Found", err.Error())
}
