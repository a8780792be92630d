// Package page applies content preprocessing and link rewriting to a single
// markdown page for a given language context.
package page

import (
	"fmt"

	"git.home.luguber.info/inful/docfanout/internal/language"
	"git.home.luguber.info/inful/docfanout/internal/links"
)

// PreprocessFunc resolves conditional blocks and cross-references in page
// content for a target language code (empty means no language context).
// It is the boundary to the preprocess engine; the processor never inspects
// markdown itself.
type PreprocessFunc func(content, sourcePath, langCode string) (string, error)

// Processor transforms one page at a time. Safe for reuse across pages and
// language variants.
type Processor struct {
	preprocess PreprocessFunc
}

// NewProcessor returns a Processor backed by the given preprocess engine.
func NewProcessor(preprocess PreprocessFunc) *Processor {
	return &Processor{preprocess: preprocess}
}

// Process runs the preprocess engine and then the link rewriter. v may be nil
// for unversioned content, in which case the engine resolves without a
// language context and links are left untouched. A preprocess failure is
// fatal for this page and is returned with the source path attached.
func (p *Processor) Process(content, sourcePath string, v *language.Variant) (string, error) {
	langCode := ""
	if v != nil {
		langCode = v.Code
	}

	processed, err := p.preprocess(content, sourcePath, langCode)
	if err != nil {
		return "", fmt.Errorf("failed to process markdown content from %s: %w", sourcePath, err)
	}

	return links.RewriteNamespaceLinks(processed, v), nil
}
