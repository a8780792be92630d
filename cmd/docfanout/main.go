package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfanout/cmd/docfanout/commands"
	"git.home.luguber.info/inful/docfanout/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docfanout"),
		kong.Description("Builds language-versioned documentation trees from a single source."),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
