package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitetools/cmd/sitetools/commands"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sitetools"),
		kong.Description("Build-time text-processing utilities for static-site generation"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Bind(&commands.Global{}),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
