package domain

import (
	"context"
	"fmt"

	"github.com/jaimerodas/elixirschool/internal/entities"
)

// Resolve scans the catalog in configured order and returns the first
// (org, repo) pair that lists login as a contributor. A failed query
// contributes no evidence and never aborts the scan, so the only error
// this operation returns is a caller contract violation.
func (u *Usecase) Resolve(ctx context.Context, login, token string) (entities.Verdict, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if login == "" || token == "" {
		return entities.Verdict{}, fmt.Errorf("%w: login and token are required", entities.ErrInvalidArgument)
	}

	for _, entry := range u.catalog.Entries() {
		for _, repo := range entry.Repos {
			contributors, err := u.contributors.ListContributors(ctx, token, entry.Org, repo)
			if err != nil {
				// Degrades coverage only: a transient error on the matching
				// repository yields a false negative rather than a failure.
				u.log.Warnw("contributor query failed, treating as no evidence",
					"org", entry.Org, "repo", repo, "error", err)
				continue
			}

			for _, c := range contributors {
				if c.Login == login {
					u.log.Infow("contribution evidence found",
						"login", login, "org", entry.Org, "repo", repo)
					return entities.Verdict{Eligible: true, Org: entry.Org, Repo: repo}, nil
				}
			}
		}
	}

	u.log.Infow("no contribution evidence", "login", login, "pairs_scanned", u.catalog.Len())
	return entities.Verdict{}, nil
}
