// Package classify holds the file classification tables used by the build:
// which files are copy-eligible, which are markdown pages, and which are
// shared between language variants instead of duplicated.
package classify

import (
	"path/filepath"
	"strings"
)

// copyExtensions are the file extensions eligible for copying into the build
// output. Anything else is skipped and counted.
var copyExtensions = map[string]bool{
	".mdx":  true,
	".md":   true,
	".json": true,
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".yml":  true,
	".yaml": true,
	".css":  true,
	".js":   true,
}

// IsCopyEligible reports whether a file's extension is in the copy set.
func IsCopyEligible(path string) bool {
	return copyExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsMarkdown reports whether a file is a markdown page (.md or .mdx).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".mdx"
}

// IsShared reports whether a file must be emitted exactly once regardless of
// language variants. relPath is the forward-slash path relative to the source
// root. Shared files: anything under an images or snippets segment, and
// script/stylesheet assets used site-wide.
func IsShared(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if part == "images" || part == "snippets" {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(relPath))
	return ext == ".js" || ext == ".css"
}
