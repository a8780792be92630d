package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docfanout/internal/build"
	"git.home.luguber.info/inful/docfanout/internal/config"
	"git.home.luguber.info/inful/docfanout/internal/linkverify"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the built documentation (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}

	src, cleanup, err := resolveSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := build.NewOrchestrator(src, cfg.Output.Directory).Run()
	if err != nil {
		return err
	}

	fmt.Printf("Build %s complete: %d docsets, %d shared files\n",
		report.ID, len(report.Docsets), report.SharedCopied)

	if cfg.Verify.Links {
		issues, err := linkverify.Verify(cfg.Output.Directory)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Printf("unresolved link %s in %s\n", issue.Link, issue.SourcePath)
		}
		if len(issues) > 0 && cfg.Verify.Fatal {
			return fmt.Errorf("link verification failed: %d unresolved links", len(issues))
		}
	}
	return nil
}
