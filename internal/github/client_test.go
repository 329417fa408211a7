package github

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOwnerRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remoteURL string
		want      RepoInfo
		ok        bool
	}{
		{
			name:      "https URL",
			remoteURL: "https://github.com/acme/widgets",
			want:      RepoInfo{Owner: "acme", Repo: "widgets"},
			ok:        true,
		},
		{
			name:      "https URL with .git suffix",
			remoteURL: "https://github.com/acme/widgets.git",
			want:      RepoInfo{Owner: "acme", Repo: "widgets"},
			ok:        true,
		},
		{
			name:      "ssh URL",
			remoteURL: "git@github.com:acme/widgets.git",
			want:      RepoInfo{Owner: "acme", Repo: "widgets"},
			ok:        true,
		},
		{
			name:      "ssh URL without .git suffix",
			remoteURL: "git@github.com:acme/widgets",
			want:      RepoInfo{Owner: "acme", Repo: "widgets"},
			ok:        true,
		},
		{
			name:      "surrounding whitespace is trimmed",
			remoteURL: "  https://github.com/acme/widgets.git\n",
			want:      RepoInfo{Owner: "acme", Repo: "widgets"},
			ok:        true,
		},
		{
			name:      "repo name containing dots",
			remoteURL: "https://github.com/acme/ship.it.git",
			want:      RepoInfo{Owner: "acme", Repo: "ship.it"},
			ok:        true,
		},
		{
			name:      "non-GitHub host",
			remoteURL: "https://gitlab.com/acme/widgets.git",
			ok:        false,
		},
		{
			name:      "local path",
			remoteURL: "/tmp/origin.git",
			ok:        false,
		},
		{
			name:      "empty URL",
			remoteURL: "",
			ok:        false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, ok := ParseOwnerRepo(tt.remoteURL)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, info)
		})
	}
}

func TestGetTokenFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")

	token, err := GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_testtoken", token)
}
