package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"terminal-maze/internal/applog"
	"terminal-maze/internal/config"
	"terminal-maze/internal/game"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run plays the game for the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, config.Sources{Output: stderr})
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "terminal-maze %s\n", version)
		return 0
	}

	logger, closeLog, err := applog.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	g, err := game.New(game.Options{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		Seed:    cfg.Seed,
		History: cfg.History,
	}, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	summary, err := g.Run()
	// The screen is released by now, so the summary stays in the terminal.
	fmt.Fprint(stdout, summary)
	if err != nil {
		logger.Error("game aborted", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
