// Command standings computes a league ranking table from match results.
// It reads one result per line, applies the 3/1/0 scoring rule, and
// writes the ranked standings report.
package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/Standings/core/league"
	"github.com/FocuswithJustin/Standings/internal/logging"
)

const version = "1.0.0"

// CLI defines the command-line interface for standings.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Rank    RankCmd    `cmd:"" default:"withargs" help:"Compute the ranking table from match results"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// RankCmd runs the full pipeline: parse results, accumulate points,
// rank, and write the report.
type RankCmd struct {
	Input  string `arg:"" optional:"" default:"input.txt" help:"Match results file (plain, .gz, or .xz)"`
	Output string `name:"output" short:"o" default:"output.txt" help:"Report destination, fully overwritten"`
}

func (c *RankCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.New().String())

	if _, err := league.Run(ctx, c.Input, c.Output); err != nil {
		return err
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("standings version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("standings"),
		kong.Description("League standings - ranked points table from match results"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
