package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate full games against the rules engine"`
	Courses  CoursesCmd       `cmd:"" help:"Print a course layout with stroke allocations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wgp"),
		kong.Description("Wolf Goat Pig wagering engine and simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
