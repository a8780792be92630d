package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

func testConfig() *Config {
	return &Config{
		Navigation: &Navigation{
			Versions: []Version{
				{
					Version: "v1",
					Tabs: []Tab{
						{
							Tab: "Guides",
							Groups: []Group{
								{
									Group: "Getting started",
									Pages: []PageEntry{
										{Page: "oss/a.md"},
										{Group: &Group{
											Group: "Nested",
											Pages: []PageEntry{{Page: "oss/b.md"}},
										}},
									},
								},
							},
						},
					},
				},
				{
					Version: "v2",
					Tabs: []Tab{
						{
							Tab: "Platform",
							Groups: []Group{
								{Group: "Basics", Pages: []PageEntry{{Page: "platform/intro.md"}}},
							},
						},
					},
				},
			},
		},
	}
}

func TestTransformExpandsConditionalVersions(t *testing.T) {
	cfg := testConfig()
	out := Transform(cfg, sets.New("oss"))

	require.Len(t, out.Navigation.Versions, 2)
	v1 := out.Navigation.Versions[0]
	assert.Equal(t, "v1", v1.Version)
	assert.Nil(t, v1.Tabs, "transformed version must carry dropdowns, not tabs")
	require.Len(t, v1.Dropdowns, 2)

	py, ts := v1.Dropdowns[0], v1.Dropdowns[1]
	assert.Equal(t, "Python", py.Dropdown)
	assert.Equal(t, "/images/logo-python.svg", py.Icon)
	assert.Equal(t, "TypeScript", ts.Dropdown)
	assert.Equal(t, "/images/logo-typescript.svg", ts.Icon)

	pyGroup := py.Tabs[0].Groups[0]
	assert.Equal(t, "oss/python/a.md", pyGroup.Pages[0].Page)
	require.True(t, pyGroup.Pages[1].IsGroup())
	assert.Equal(t, "oss/python/b.md", pyGroup.Pages[1].Group.Pages[0].Page)

	tsGroup := ts.Tabs[0].Groups[0]
	assert.Equal(t, "oss/javascript/a.md", tsGroup.Pages[0].Page)
	require.True(t, tsGroup.Pages[1].IsGroup())
	assert.Equal(t, "oss/javascript/b.md", tsGroup.Pages[1].Group.Pages[0].Page)
}

func TestTransformLeavesUnconditionalVersionsUntouched(t *testing.T) {
	cfg := testConfig()
	out := Transform(cfg, sets.New("oss"))

	v2 := out.Navigation.Versions[1]
	assert.Equal(t, cfg.Navigation.Versions[1], v2, "unconditional version must be structurally identical")
	assert.Nil(t, v2.Dropdowns)
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	cfg := testConfig()
	snapshot := cfg.Clone()

	_ = Transform(cfg, sets.New("oss"))
	assert.Equal(t, snapshot, cfg, "input config must never be mutated")

	// Repeated calls against the same config stay safe.
	first := Transform(cfg, sets.New("oss"))
	second := Transform(cfg, sets.New("oss"))
	assert.Equal(t, first, second)
}

func TestTransformWithNoConditionalDirs(t *testing.T) {
	cfg := testConfig()
	out := Transform(cfg, sets.New[string]())
	assert.Equal(t, cfg, out)
}

func TestTransformNilNavigation(t *testing.T) {
	out := Transform(&Config{}, sets.New("oss"))
	assert.Nil(t, out.Navigation)
}

func TestRewritePagePath(t *testing.T) {
	cases := []struct{ in, segment, want string }{
		{"oss/a.md", "python", "oss/python/a.md"},
		{"oss/deep/b.md", "javascript", "oss/javascript/deep/b.md"},
		{"index.md", "python", "python/index.md"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, rewritePagePath(c.in, c.segment))
	}
}
