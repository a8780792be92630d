package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docfanout/internal/config"
	"git.home.luguber.info/inful/docfanout/internal/linkverify"
)

// VerifyCmd implements the 'verify' command: it checks internal links in an
// existing build directory.
type VerifyCmd struct {
	Dir string `short:"d" help:"Build directory to verify (defaults to the configured output directory)"`
}

func (v *VerifyCmd) Run(_ *Global, root *CLI) error {
	dir := v.Dir
	if dir == "" {
		cfg, err := config.Load(root.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dir = cfg.Output.Directory
	}

	issues, err := linkverify.Verify(dir)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Println("All internal links resolve")
		return nil
	}
	for _, issue := range issues {
		fmt.Printf("unresolved link %s in %s\n", issue.Link, issue.SourcePath)
	}
	return fmt.Errorf("link verification failed: %d unresolved links", len(issues))
}
