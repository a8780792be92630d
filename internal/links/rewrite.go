// Package links rewrites absolute cross-links so they route through the
// correct language segment in fanned-out docsets.
package links

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docfanout/internal/language"
)

// Namespace is the top-level path segment whose absolute links are rewritten.
const Namespace = "oss"

// linkRe matches both markdown links [text](/oss/path) and HTML attribute
// links href="/oss/path" (plus the bare quoted form used by other attributes).
// Group 1 is everything before the URL, group 2 the URL, group 3 the closer.
var linkRe = regexp.MustCompile(`(\[.*?\]\(|\bhref="|")(/` + Namespace + `/[^")\s]+)([")\s])`)

// RewriteNamespaceLinks inserts v's URL segment immediately after the
// namespace segment in every absolute /oss/ link. Links into images sub-paths
// are left alone (images are shared, never language-specific), as are links
// already carrying the segment, so re-applying for the same language is a
// no-op. A nil variant returns content unchanged.
func RewriteNamespaceLinks(content string, v *language.Variant) string {
	if v == nil {
		return content
	}

	return linkRe.ReplaceAllStringFunc(content, func(m string) string {
		matches := linkRe.FindStringSubmatch(m)
		if len(matches) != 4 {
			return m
		}
		pre, url, post := matches[1], matches[2], matches[3]

		if strings.Contains(url, "images") {
			return m
		}

		parts := strings.Split(url, "/")
		// parts[0] is "", parts[1] is the namespace.
		if len(parts) > 2 && parts[2] == v.Segment {
			return m
		}

		rewritten := make([]string, 0, len(parts)+1)
		rewritten = append(rewritten, parts[:2]...)
		rewritten = append(rewritten, v.Segment)
		rewritten = append(rewritten, parts[2:]...)
		return pre + strings.Join(rewritten, "/") + post
	})
}
