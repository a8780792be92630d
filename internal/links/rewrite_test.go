package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docfanout/internal/language"
)

func TestRewriteNamespaceLinks(t *testing.T) {
	py := language.Python
	js := language.JavaScript

	cases := []struct {
		name    string
		in      string
		variant *language.Variant
		want    string
	}{
		{
			"markdown link",
			"See [the guide](/oss/concepts/agents) for details",
			&py,
			"See [the guide](/oss/python/concepts/agents) for details",
		},
		{
			"markdown link javascript",
			"[api](/oss/reference/index.md)",
			&js,
			"[api](/oss/javascript/reference/index.md)",
		},
		{
			"href link",
			`<a href="/oss/concepts/agents">agents</a>`,
			&py,
			`<a href="/oss/python/concepts/agents">agents</a>`,
		},
		{
			"quoted attribute",
			`<Card title="x" link="/oss/how-to/stream" />`,
			&py,
			`<Card title="x" link="/oss/python/how-to/stream" />`,
		},
		{
			"images path untouched",
			"![diagram](/oss/images/arch.png)",
			&py,
			"![diagram](/oss/images/arch.png)",
		},
		{
			"relative link untouched",
			"[sibling](../other.md)",
			&py,
			"[sibling](../other.md)",
		},
		{
			"external link untouched",
			"[site](https://example.com/oss/page)",
			&py,
			"[site](https://example.com/oss/page)",
		},
		{
			"outside namespace untouched",
			"[labs](/labs/experiments)",
			&py,
			"[labs](/labs/experiments)",
		},
		{
			"nil variant is a no-op",
			"[the guide](/oss/concepts/agents)",
			nil,
			"[the guide](/oss/concepts/agents)",
		},
		{
			"multiple links in one page",
			"[a](/oss/a) and [b](/oss/b/c)",
			&py,
			"[a](/oss/python/a) and [b](/oss/python/b/c)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewriteNamespaceLinks(tc.in, tc.variant))
		})
	}
}

// Double application for the same language must not double-insert the segment.
func TestRewriteNamespaceLinksSameLanguageReapplication(t *testing.T) {
	py := language.Python
	in := "See [the guide](/oss/concepts/agents) and " + `<a href="/oss/how-to/stream">stream</a>`

	once := RewriteNamespaceLinks(in, &py)
	twice := RewriteNamespaceLinks(once, &py)
	assert.Equal(t, once, twice)
}

func TestRewriteNamespaceLinksImagesNeverGetSegment(t *testing.T) {
	for _, v := range language.Variants() {
		v := v
		got := RewriteNamespaceLinks(`<img src="/oss/images/logo.svg">`, &v)
		assert.Equal(t, `<img src="/oss/images/logo.svg">`, got, "variant %s", v.Code)
	}
}
