// Package gitsource fetches a remote documentation tree when the configured
// source is a git repository instead of a local directory.
package gitsource

import (
	"fmt"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docfanout/internal/logfields"
)

// Fetch shallow-clones url into destDir. ref selects a branch or tag; the
// remote default branch is used when empty. destDir is replaced if it exists.
func Fetch(url, ref, destDir string) error {
	slog.Debug("Cloning documentation source", slog.String("url", url), slog.String("ref", ref), logfields.Path(destDir))

	if err := os.RemoveAll(destDir); err != nil {
		return fmt.Errorf("failed to remove existing clone directory: %w", err)
	}

	cloneOptions := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if ref != "" {
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/heads/" + ref)
		cloneOptions.SingleBranch = true
	}

	repository, err := git.PlainClone(destDir, false, cloneOptions)
	if err != nil && ref != "" {
		// The ref may name a tag rather than a branch.
		if rmErr := os.RemoveAll(destDir); rmErr != nil {
			return fmt.Errorf("failed to remove partial clone directory: %w", rmErr)
		}
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/tags/" + ref)
		repository, err = git.PlainClone(destDir, false, cloneOptions)
	}
	if err != nil {
		return fmt.Errorf("failed to clone documentation source %s: %w", url, err)
	}

	if head, err := repository.Head(); err == nil {
		slog.Info("Documentation source cloned",
			slog.String("url", url),
			slog.String("commit", head.Hash().String()[:8]),
			logfields.Path(destDir))
	} else {
		slog.Info("Documentation source cloned", slog.String("url", url), logfields.Path(destDir))
	}
	return nil
}
