package linkverify

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// linkAttrs maps HTML tags to the attribute carrying their link.
var linkAttrs = map[string]string{
	"a":      "href",
	"img":    "src",
	"script": "src",
	"link":   "href",
	"card":   "href",
}

// extractHTMLLinks tokenizes embedded HTML in a page body and returns link
// attribute values. MDX pages routinely mix markdown with HTML elements, so
// markdown AST extraction alone misses these.
func extractHTMLLinks(body []byte) []string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))

	var links []string
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			// io.EOF or malformed fragment; either way we are done.
			return links
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()
		attr, ok := linkAttrs[strings.ToLower(token.Data)]
		if !ok {
			continue
		}
		for _, a := range token.Attr {
			if strings.EqualFold(a.Key, attr) && a.Val != "" {
				links = append(links, a.Val)
			}
		}
	}
}
