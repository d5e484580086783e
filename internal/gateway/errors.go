package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-github/v62/github"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// classifyError maps errors returned by the REST client onto the domain taxonomy:
// any error status becomes a *domain.RequestError, undecodable bodies become
// ErrMalformedResponse and everything without a response is a network failure.
func classifyError(endpoint string, err error) error {
	var (
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		respErr   *github.ErrorResponse
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.As(err, &rateErr):
		return &domain.RequestError{StatusCode: statusOf(rateErr.Response), Endpoint: endpoint, RateLimited: true, Err: err}
	case errors.As(err, &abuseErr):
		return &domain.RequestError{StatusCode: statusOf(abuseErr.Response), Endpoint: endpoint, RateLimited: true, Err: err}
	case errors.As(err, &respErr):
		status := statusOf(respErr.Response)
		return &domain.RequestError{StatusCode: status, Endpoint: endpoint, RateLimited: status == http.StatusTooManyRequests, Err: err}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrNetworkFailure, err)
	}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
