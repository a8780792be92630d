package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfanout/internal/preprocess"
	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

func TestIsShared(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"snippets/shared.mdx", true},
		{"images/anything.png", true},
		{"oss/images/diagram.svg", true},
		{"oss/snippets/install.mdx", true},
		{"custom.js", true},
		{"styles/site.css", true},
		{"oss/guide.md", false},
		{"labs/data.json", false},
		{"imagesthing/file.md", false}, // segment match, not substring
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsShared(c.path), "path %q", c.path)
	}
}

func TestIsCopyEligible(t *testing.T) {
	for _, p := range []string{"a.md", "a.mdx", "a.JSON", "a.svg", "a.png", "a.jpg", "a.jpeg", "a.gif", "a.yml", "a.yaml", "a.css", "a.js"} {
		assert.True(t, IsCopyEligible(p), "path %q", p)
	}
	for _, p := range []string{"a.py", "a.html", "a.txt", "Makefile", "a"} {
		assert.False(t, IsCopyEligible(p), "path %q", p)
	}
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("oss/a.md"))
	assert.True(t, IsMarkdown("oss/a.MDX"))
	assert.False(t, IsMarkdown("oss/a.json"))
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectConditionalDirs(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "oss/a.md", "intro\n:::python\npy only\n:::\n")
	writeFile(t, src, "oss/b.md", "plain page")
	writeFile(t, src, "labs/c.md", "another plain page")
	writeFile(t, src, "labs/deep/d.mdx", "nested\n:::js\njs only\n:::\n")
	writeFile(t, src, "platform/e.md", "no conditionals here")
	writeFile(t, src, "root.md", ":::python\nroot pages have no top-level dir\n:::\n")
	writeFile(t, src, "platform/data.json", ":::python") // not markdown, ignored

	dirs, err := DetectConditionalDirs(src, preprocess.HasConditionalBlocks)
	require.NoError(t, err)

	assert.Equal(t, []string{"labs", "oss"}, sets.Values(dirs))
	assert.False(t, dirs.Has("platform"))
}

func TestDetectConditionalDirsEmptyTree(t *testing.T) {
	dirs, err := DetectConditionalDirs(t.TempDir(), preprocess.HasConditionalBlocks)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestTopLevelDirs(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "oss/a.md", "x")
	writeFile(t, src, "labs/b.md", "x")
	writeFile(t, src, "root.md", "x")

	dirs, err := TopLevelDirs(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"labs", "oss"}, sets.Values(dirs))
}
