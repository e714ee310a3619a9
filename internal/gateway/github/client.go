// Package github wraps the outbound GitHub API calls: the per-repository
// contributor listing used for eligibility and the OAuth login exchange.
package github

import (
	"context"
	"fmt"

	"github.com/jaimerodas/elixirschool/internal/entities"
	"github.com/jaimerodas/elixirschool/internal/mapper"

	gh "github.com/google/go-github/v73/github"
	"go.uber.org/zap"
)

// ContributorLister issues one contributor-listing call per invocation.
type ContributorLister interface {
	ListContributors(ctx context.Context, token, org, repo string) ([]entities.Contributor, error)
}

// Client lists repository contributors through the GitHub REST API.
type Client struct {
	log     *zap.SugaredLogger
	baseURL string
}

// NewClient constructs a contributor query client. baseURL overrides the
// API endpoint and may be empty for api.github.com.
func NewClient(log *zap.SugaredLogger, baseURL string) *Client {
	return &Client{
		log:     log.Named("gateway.github"),
		baseURL: baseURL,
	}
}

// ListContributors returns the first page of contributors of org/repo as
// reported by GitHub, in API order. Exactly one outbound call is made: no
// retries, no caching, no pagination beyond the first page. Failures come
// back as *QueryError.
func (c *Client) ListContributors(ctx context.Context, token, org, repo string) ([]entities.Contributor, error) {
	if token == "" || org == "" || repo == "" {
		return nil, fmt.Errorf("%w: token, org and repo are required", entities.ErrInvalidArgument)
	}

	api, err := c.api(token)
	if err != nil {
		return nil, &QueryError{Kind: KindTransport, Org: org, Repo: repo, Err: err}
	}

	contributors, _, err := api.Repositories.ListContributors(ctx, org, repo, nil)
	if err != nil {
		qerr := classify(org, repo, err)
		c.log.Debugw("contributor listing failed",
			"org", org, "repo", repo, "kind", qerr.Kind)
		return nil, qerr
	}

	return mapper.ToContributors(contributors), nil
}

func (c *Client) api(token string) (*gh.Client, error) {
	api := gh.NewClient(nil).WithAuthToken(token)
	if c.baseURL == "" {
		return api, nil
	}
	return api.WithEnterpriseURLs(c.baseURL, c.baseURL)
}
