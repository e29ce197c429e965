package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/besthand/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Best    BestCmd          `cmd:"" help:"Find the best 5-card hand in 7 cards (no jokers)"`
	Wild    WildCmd          `cmd:"" help:"Find the best 5-card hand in 7 cards that may include ?B / ?R jokers"`
	Rank    RankCmd          `cmd:"" help:"Score exactly 5 cards"`
	Batch   BatchCmd         `cmd:"" help:"Evaluate one hand per line from a file or stdin"`
	Sample  SampleCmd        `cmd:"" help:"Deal and evaluate random 7-card hands"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("besthand"),
		kong.Description("Find the best 5-card poker hand in 7 cards, with wildcard jokers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kongVars(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func kongVars() kong.Vars {
	return kong.Vars{
		"version":     version,
		"config_file": config.DefaultFile,
	}
}
