// Package mapper converts between external API models and domain entities.
package mapper

import (
	"github.com/jaimerodas/elixirschool/internal/entities"

	gh "github.com/google/go-github/v73/github"
)

// ToContributor maps a GitHub API contributor to the domain model.
func ToContributor(src *gh.Contributor) entities.Contributor {
	return entities.Contributor{
		ID:    src.GetID(),
		Login: src.GetLogin(),
	}
}

// ToContributors maps a GitHub API contributor list, skipping nil entries.
func ToContributors(list []*gh.Contributor) []entities.Contributor {
	res := make([]entities.Contributor, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		res = append(res, ToContributor(c))
	}
	return res
}
