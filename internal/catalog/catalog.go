// Package catalog holds the configured matrix of organizations and
// repositories checked for contribution evidence.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jaimerodas/elixirschool/internal/entities"
)

// Entry is one organization with its repositories in scan order.
type Entry struct {
	Org   string
	Repos []string
}

// Catalog is an ordered, read-only list of entries. It is built once at
// startup and never mutated afterwards, so concurrent reads need no locking.
type Catalog struct {
	entries []Entry
}

// Parse builds a catalog from its configuration form:
// semicolon-separated organizations, each "org:repo1,repo2".
// Scan order follows the configured order exactly. An empty string
// yields an empty catalog.
func Parse(raw string) (*Catalog, error) {
	c := &Catalog{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return c, nil
	}

	seen := make(map[string]struct{})
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		org, repoList, ok := strings.Cut(segment, ":")
		org = strings.TrimSpace(org)
		if !ok || org == "" {
			return nil, fmt.Errorf("%w: catalog segment %q must be org:repo1,repo2", entities.ErrInvalidArgument, segment)
		}
		if _, dup := seen[org]; dup {
			return nil, fmt.Errorf("%w: duplicate catalog org %q", entities.ErrInvalidArgument, org)
		}

		var repos []string
		for _, repo := range strings.Split(repoList, ",") {
			repo = strings.TrimSpace(repo)
			if repo != "" {
				repos = append(repos, repo)
			}
		}
		if len(repos) == 0 {
			return nil, fmt.Errorf("%w: catalog org %q has no repositories", entities.ErrInvalidArgument, org)
		}

		seen[org] = struct{}{}
		c.entries = append(c.entries, Entry{Org: org, Repos: repos})
	}

	return c, nil
}

// New builds a catalog directly from entries, preserving their order.
func New(entries ...Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Entries returns organizations in scan order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Repos returns the repositories configured for an org, nil if unknown.
func (c *Catalog) Repos(org string) []string {
	for _, e := range c.entries {
		if e.Org == org {
			return e.Repos
		}
	}
	return nil
}

// Len counts configured (org, repo) pairs.
func (c *Catalog) Len() int {
	n := 0
	for _, e := range c.entries {
		n += len(e.Repos)
	}
	return n
}
