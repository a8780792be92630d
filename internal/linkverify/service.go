// Package linkverify checks that internal links in built documentation
// resolve to files in the build tree. It runs after a build, when link
// rewriting has already routed cross-links into language sub-paths; a dead
// link here means one of the three transformations drifted.
package linkverify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docfanout/internal/classify"
	"git.home.luguber.info/inful/docfanout/internal/logfields"
	"git.home.luguber.info/inful/docfanout/internal/markdown"
)

// Issue is one unresolved internal link.
type Issue struct {
	SourcePath string // page containing the link, relative to the build root
	Link       string // the unresolved destination
}

// Verify walks the build tree and returns an issue for every internal
// absolute link that does not resolve to a file. External links, anchors, and
// relative links are not checked.
func Verify(buildRoot string) ([]Issue, error) {
	var issues []Issue

	err := filepath.Walk(buildRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !classify.IsMarkdown(path) {
			return nil
		}

		relPath, err := filepath.Rel(buildRoot, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}

		body, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Failed to read built page during link verification", logfields.Path(relPath), logfields.Error(err))
			return nil
		}

		for _, dest := range collectDestinations(body) {
			if !isInternal(dest) {
				continue
			}
			if !resolves(buildRoot, dest) {
				issues = append(issues, Issue{SourcePath: filepath.ToSlash(relPath), Link: dest})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("link verification walk failed: %w", err)
	}

	if len(issues) > 0 {
		slog.Warn("Link verification found unresolved links", slog.Int("count", len(issues)))
	} else {
		slog.Info("Link verification passed")
	}
	return issues, nil
}

// collectDestinations merges goldmark-extracted markdown links with href/src
// attributes from embedded HTML, deduplicated in first-seen order.
func collectDestinations(body []byte) []string {
	seen := make(map[string]bool)
	var dests []string
	add := func(d string) {
		if d != "" && !seen[d] {
			seen[d] = true
			dests = append(dests, d)
		}
	}

	for _, l := range markdown.ExtractLinks(body) {
		add(l.Destination)
	}
	for _, d := range extractHTMLLinks(body) {
		add(d)
	}
	return dests
}

// isInternal reports whether a destination is an absolute in-site path.
func isInternal(dest string) bool {
	if !strings.HasPrefix(dest, "/") {
		return false
	}
	return !strings.HasPrefix(dest, "//")
}

// resolves checks whether an internal destination maps to a file in the build
// tree, accounting for extensionless page links and the .md to .mdx
// normalization applied at build time.
func resolves(buildRoot, dest string) bool {
	// Drop anchors and query strings.
	if idx := strings.IndexAny(dest, "#?"); idx >= 0 {
		dest = dest[:idx]
	}
	dest = strings.TrimSuffix(dest, "/")
	if dest == "" {
		return true // link to the site root
	}

	base := filepath.Join(buildRoot, filepath.FromSlash(strings.TrimPrefix(dest, "/")))
	candidates := []string{base, base + ".mdx", base + ".md"}
	if strings.HasSuffix(strings.ToLower(dest), ".md") {
		candidates = append(candidates, strings.TrimSuffix(base, filepath.Ext(base))+".mdx")
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
