package catalog

import (
	"testing"

	"github.com/jaimerodas/elixirschool/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Entry
		wantErr  bool
	}{
		{
			name:     "empty is a valid catalog",
			raw:      "",
			expected: nil,
		},
		{
			name:     "single org single repo",
			raw:      "acme:core",
			expected: []Entry{{Org: "acme", Repos: []string{"core"}}},
		},
		{
			name: "order follows configuration",
			raw:  "acme:core,site;beta:widgets",
			expected: []Entry{
				{Org: "acme", Repos: []string{"core", "site"}},
				{Org: "beta", Repos: []string{"widgets"}},
			},
		},
		{
			name: "whitespace is trimmed",
			raw:  " acme : core , site ; beta : widgets ",
			expected: []Entry{
				{Org: "acme", Repos: []string{"core", "site"}},
				{Org: "beta", Repos: []string{"widgets"}},
			},
		},
		{
			name:    "missing colon",
			raw:     "acme",
			wantErr: true,
		},
		{
			name:    "empty org",
			raw:     ":core",
			wantErr: true,
		},
		{
			name:    "org without repos",
			raw:     "acme:",
			wantErr: true,
		},
		{
			name:    "duplicate org",
			raw:     "acme:core;acme:site",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, entities.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, c.Entries())
		})
	}
}

func TestCatalogAccessors(t *testing.T) {
	c, err := Parse("acme:core,site;beta:widgets")
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"core", "site"}, c.Repos("acme"))
	require.Nil(t, c.Repos("unknown"))

	empty, err := Parse("")
	require.NoError(t, err)
	require.Zero(t, empty.Len())
	require.Empty(t, empty.Entries())
}
