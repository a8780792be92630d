// Package docset materializes one directory's worth of built documentation:
// markdown pages run through the page processor, assets copied byte-for-byte,
// shared files emitted once at their original location.
package docset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docfanout/internal/classify"
	"git.home.luguber.info/inful/docfanout/internal/language"
	"git.home.luguber.info/inful/docfanout/internal/logfields"
	"git.home.luguber.info/inful/docfanout/internal/page"
)

var (
	// ErrNotRegularFile indicates a build was requested for something that is
	// not a regular file inside the source root. This never happens in
	// correct usage; it is a programming error, not an input error.
	ErrNotRegularFile = errors.New("build target is not a regular file (programming error)")

	// ErrFileWriteFailed indicates writing a processed page to the build tree failed.
	ErrFileWriteFailed = errors.New("build output write failed")
)

// Stats counts the outcome of one docset build.
type Stats struct {
	Copied  int
	Skipped int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Copied += other.Copied
	s.Skipped += other.Skipped
}

// Builder copies documentation files from a source root into a build root.
type Builder struct {
	srcRoot   string
	buildRoot string
	processor *page.Processor
}

// NewBuilder creates a Builder rooted at srcRoot writing under buildRoot.
func NewBuilder(srcRoot, buildRoot string, processor *page.Processor) *Builder {
	return &Builder{srcRoot: srcRoot, buildRoot: buildRoot, processor: processor}
}

// BuildDir builds every non-shared file under srcRoot/sourceDir into
// buildRoot/outputDir, preserving the directory structure below sourceDir.
// outputDir may include a language sub-path (e.g. "oss/python"). v selects
// the language context; nil builds unversioned content.
//
// A missing source directory is logged and skipped, matching full builds over
// partially-populated trees. A preprocess failure aborts this docset.
func (b *Builder) BuildDir(sourceDir, outputDir string, v *language.Variant) (Stats, error) {
	srcPath := filepath.Join(b.srcRoot, sourceDir)
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		slog.Warn("Source directory not found, skipping docset", logfields.Dir(sourceDir))
		return Stats{}, nil
	}

	var stats Stats
	err := filepath.Walk(srcPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relToRoot, err := filepath.Rel(b.srcRoot, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}
		if classify.IsShared(relToRoot) {
			return nil
		}

		relToDir, err := filepath.Rel(srcPath, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}
		outputPath := filepath.Join(b.buildRoot, outputDir, relToDir)

		copied, err := b.buildSingleFile(path, outputPath, v)
		if err != nil {
			return err
		}
		if copied {
			stats.Copied++
		} else {
			stats.Skipped++
			slog.Debug("Skipped file with unsupported extension", logfields.File(relToRoot))
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("docset build failed for %s: %w", outputDir, err)
	}

	lang := ""
	if v != nil {
		lang = v.Code
	}
	slog.Info("Docset build complete",
		logfields.Docset(outputDir),
		logfields.Language(lang),
		logfields.Copied(stats.Copied),
		logfields.Skipped(stats.Skipped))
	return stats, nil
}

// BuildFile builds a single file at its original relative location without a
// language context. Used for targeted rebuilds.
func (b *Builder) BuildFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	relPath, err := filepath.Rel(b.srcRoot, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return fmt.Errorf("%w: %s is outside the source root", ErrNotRegularFile, path)
	}

	copied, err := b.buildSingleFile(path, filepath.Join(b.buildRoot, relPath), nil)
	if err != nil {
		return err
	}
	if copied {
		slog.Info("Built file", logfields.File(relPath))
	} else {
		slog.Info("Skipped file (unsupported extension)", logfields.File(relPath))
	}
	return nil
}

// CopyShared copies every shared, copy-eligible file once at its original
// relative path. Returns the number of files copied.
func (b *Builder) CopyShared() (int, error) {
	copied := 0
	err := filepath.Walk(b.srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(b.srcRoot, path)
		if err != nil {
			return fmt.Errorf("invalid relative path for %s: %w", path, err)
		}
		if !classify.IsShared(relPath) || !classify.IsCopyEligible(path) {
			return nil
		}

		outputPath := filepath.Join(b.buildRoot, relPath)
		if err := copyFile(path, outputPath); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("shared file copy failed: %w", err)
	}

	slog.Info("Shared files copied", logfields.Copied(copied))
	return copied, nil
}

// buildSingleFile materializes one file. Markdown is processed (and .md output
// normalized to .mdx); other copy-eligible extensions are copied directly.
// Returns false for unsupported extensions.
func (b *Builder) buildSingleFile(srcPath, outputPath string, v *language.Variant) (bool, error) {
	if !classify.IsCopyEligible(srcPath) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return false, fmt.Errorf("%w: failed to create directory for %s: %w", ErrFileWriteFailed, outputPath, err)
	}

	if classify.IsMarkdown(srcPath) {
		return true, b.processMarkdownFile(srcPath, outputPath, v)
	}
	return true, copyFile(srcPath, outputPath)
}

// processMarkdownFile reads, processes, and writes a single markdown page.
// Output is written only after processing succeeds, so a failure never leaves
// a partially-written page behind.
func (b *Builder) processMarkdownFile(srcPath, outputPath string, v *language.Variant) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read markdown file %s: %w", srcPath, err)
	}

	processed, err := b.processor.Process(string(content), srcPath, v)
	if err != nil {
		return err
	}

	// Normalize the short markdown form to the extended one.
	if strings.EqualFold(filepath.Ext(outputPath), ".md") {
		outputPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".mdx"
	}

	if err := os.WriteFile(outputPath, []byte(processed), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWriteFailed, outputPath, err)
	}
	return nil
}

// copyFile copies a single file preserving its permission bits.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWriteFailed, dst, err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWriteFailed, dst, err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode())
}
