package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	body := []byte(`# Page

See [the guide](/oss/python/guide) and ![logo](/images/logo.svg).

Auto: <https://example.com>
`)
	links := ExtractLinks(body)

	dests := make(map[LinkKind][]string)
	for _, l := range links {
		dests[l.Kind] = append(dests[l.Kind], l.Destination)
	}

	assert.Equal(t, []string{"/oss/python/guide"}, dests[LinkKindInline])
	assert.Equal(t, []string{"/images/logo.svg"}, dests[LinkKindImage])
	assert.Equal(t, []string{"https://example.com"}, dests[LinkKindAuto])
}

func TestExtractLinksEmptyBody(t *testing.T) {
	assert.Empty(t, ExtractLinks(nil))
}
