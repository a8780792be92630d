// Package language defines the two documentation language variants and the
// explicit mapping between conditional-block codes, URL path segments, and
// navigation display metadata. The cardinality is fixed: every consumer
// iterates Variants() and never invents its own mapping.
package language

// Variant is one documentation output target.
type Variant struct {
	Code    string // short code matched against conditional-block tags (e.g. "js")
	Segment string // URL and filesystem path segment (e.g. "javascript")
	Title   string // navigation dropdown title
	Icon    string // navigation dropdown icon path
}

var (
	Python = Variant{
		Code:    "python",
		Segment: "python",
		Title:   "Python",
		Icon:    "/images/logo-python.svg",
	}
	JavaScript = Variant{
		Code:    "js",
		Segment: "javascript",
		Title:   "TypeScript",
		Icon:    "/images/logo-typescript.svg",
	}
)

// Variants returns both supported variants in build order.
func Variants() []Variant {
	return []Variant{Python, JavaScript}
}

// Default is the variant used as processing context for unversioned docsets.
func Default() Variant {
	return Python
}
