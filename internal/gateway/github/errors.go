package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v73/github"
)

// Kind classifies a failed contributor query.
type Kind string

const (
	// KindUnauthorized covers 401/403 responses for the supplied token.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound covers missing or invisible repositories.
	KindNotFound Kind = "not_found"
	// KindRateLimited covers primary and secondary rate limits.
	KindRateLimited Kind = "rate_limited"
	// KindTransport covers network failures and timeouts.
	KindTransport Kind = "transport"
	// KindMalformed covers undecodable API responses.
	KindMalformed Kind = "malformed"
)

// QueryError describes a single failed contributor-listing call. It is
// always local to one (org, repo) pair and never aborts a resolution.
type QueryError struct {
	Kind Kind
	Org  string
	Repo string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("list contributors %s/%s: %s: %v", e.Org, e.Repo, e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func classify(org, repo string, err error) *QueryError {
	kind := KindTransport

	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		respErr  *gh.ErrorResponse
		syntax   *json.SyntaxError
		typeErr  *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		kind = KindRateLimited
	case errors.As(err, &respErr):
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindUnauthorized
		case http.StatusNotFound:
			kind = KindNotFound
		case http.StatusTooManyRequests:
			kind = KindRateLimited
		}
	case errors.As(err, &syntax), errors.As(err, &typeErr):
		kind = KindMalformed
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindTransport
	}

	return &QueryError{Kind: kind, Org: org, Repo: repo, Err: err}
}
