package gitsource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// newSourceRepo initializes a local repository with one committed docs page
// and returns its path. go-git clones from plain filesystem paths, so the
// tests need no network.
func newSourceRepo(t *testing.T) string {
	t.Helper()
	repoDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "docs", "index.md"), []byte("# Docs\n"), 0o644))

	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("docs/index.md")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)
	return repoDir
}

func TestFetchDefaultBranch(t *testing.T) {
	repoDir := newSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	require.NoError(t, Fetch(repoDir, "", dest))

	content, err := os.ReadFile(filepath.Join(dest, "docs", "index.md"))
	require.NoError(t, err)
	require.Equal(t, "# Docs\n", string(content))
}

func TestFetchFallsBackToTag(t *testing.T) {
	repoDir := newSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	// v1.0.0 is a tag, not a branch, so the branch clone attempt fails first.
	require.NoError(t, Fetch(repoDir, "v1.0.0", dest))

	_, err := os.Stat(filepath.Join(dest, "docs", "index.md"))
	require.NoError(t, err)
}

func TestFetchReplacesExistingDestination(t *testing.T) {
	repoDir := newSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.txt"), []byte("old"), 0o644))

	require.NoError(t, Fetch(repoDir, "", dest))

	_, err := os.Stat(filepath.Join(dest, "stale.txt"))
	require.True(t, os.IsNotExist(err))
}

func TestFetchUnknownRef(t *testing.T) {
	repoDir := newSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	err := Fetch(repoDir, "no-such-ref", dest)
	require.Error(t, err)
}
