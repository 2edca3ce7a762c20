package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config   string           `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	Debug    bool             `help:"Enable debug logging"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`

	Eval     EvalCmd     `cmd:"" help:"Evaluate a 5, 6 or 7 card hand"`
	Classify ClassifyCmd `cmd:"" help:"Show the hand class of a rank"`
	Table    TableCmd    `cmd:"" help:"Inspect or export the lookup table"`
	Deal     DealCmd     `cmd:"" help:"Deal a random hand and summarise every street"`
	Odds     OddsCmd     `cmd:"" help:"Estimate win, tie and equity by Monte Carlo simulation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Cactus Kev poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)

	a, err := newApp(globals{
		ConfigFile: cli.Config,
		LogLevel:   cli.LogLevel,
		Debug:      cli.Debug,
	}, os.Stdout, os.Stderr, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
