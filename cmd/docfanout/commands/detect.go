package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docfanout/internal/classify"
	"git.home.luguber.info/inful/docfanout/internal/config"
	"git.home.luguber.info/inful/docfanout/internal/preprocess"
	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

// DetectCmd implements the 'detect' command: it prints the conditional
// top-level directories without building anything.
type DetectCmd struct{}

func (d *DetectCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	src, cleanup, err := resolveSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	dirs, err := classify.DetectConditionalDirs(src, preprocess.HasConditionalBlocks)
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		fmt.Println("No conditional directories found")
		return nil
	}
	for _, dir := range sets.Values(dirs) {
		fmt.Println(dir)
	}
	return nil
}
