package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfanout/internal/config"
	"git.home.luguber.info/inful/docfanout/internal/gitsource"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docfanout.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build versioned documentation from the source tree"`
	Detect DetectCmd `cmd:"" help:"List top-level directories containing language-conditional pages"`
	Verify VerifyCmd `cmd:"" help:"Verify internal links in a build directory"`
	Watch  WatchCmd  `cmd:"" help:"Rebuild continuously as the source tree changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveSource returns the local source directory for a build, cloning the
// configured git source into a scratch directory when one is set. The cleanup
// function removes the clone and is a no-op for local sources.
func resolveSource(cfg *config.Config) (string, func(), error) {
	if cfg.Source.GitURL == "" {
		return cfg.Source.Directory, func() {}, nil
	}

	cloneDir, err := os.MkdirTemp("", "docfanout-src-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		_ = os.RemoveAll(cloneDir)
	}

	if err := gitsource.Fetch(cfg.Source.GitURL, cfg.Source.GitRef, cloneDir); err != nil {
		cleanup()
		return "", nil, err
	}

	src := cloneDir
	if cfg.Source.Directory != "" {
		// Docs may live in a subdirectory of the cloned repository.
		src = filepath.Join(cloneDir, cfg.Source.Directory)
	}
	return src, cleanup, nil
}
