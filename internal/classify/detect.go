package classify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docfanout/internal/logfields"
	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

// ConditionalProbe reports whether page content contains language-conditional
// markup. The build wires this to the preprocess engine's detection primitive.
type ConditionalProbe func(content []byte) bool

// DetectConditionalDirs walks the source tree and returns the set of top-level
// directory names containing at least one conditional markdown page. This set
// is computed once per build and is the single source of truth for both the
// filesystem fan-out and the navigation transform.
//
// Unreadable files are logged and treated as non-conditional; a single bad
// page never fails detection.
func DetectConditionalDirs(srcRoot string, probe ConditionalProbe) (sets.Set[string], error) {
	dirs := sets.New[string]()

	err := filepath.Walk(srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsMarkdown(path) {
			return nil
		}

		relPath, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}

		parts := strings.Split(filepath.ToSlash(relPath), "/")
		if len(parts) < 2 {
			// Root-level pages have no top-level directory to fan out.
			return nil
		}
		if dirs.Has(parts[0]) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Failed to read page during conditional detection, treating as non-conditional",
				logfields.Path(relPath), logfields.Error(err))
			return nil
		}

		if probe(content) {
			slog.Debug("Conditional page found", logfields.Path(relPath), logfields.Dir(parts[0]))
			dirs.Add(parts[0])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conditional detection walk failed for %s: %w", srcRoot, err)
	}

	slog.Info("Conditional directories detected", slog.Any("directories", sets.Values(dirs)))
	return dirs, nil
}

// TopLevelDirs returns the names of all directories directly under srcRoot.
func TopLevelDirs(srcRoot string) (sets.Set[string], error) {
	entries, err := os.ReadDir(srcRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root %s: %w", srcRoot, err)
	}
	dirs := sets.New[string]()
	for _, entry := range entries {
		if entry.IsDir() {
			dirs.Add(entry.Name())
		}
	}
	return dirs, nil
}
