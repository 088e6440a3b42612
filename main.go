// Package main implements a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/rom"
	"github.com/retroenv/retrochip8/internal/sdl"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// run loads the ROM, constructs the system and hands control to the SDL
// frontend until the window is closed or the program faults.
func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	data, err := rom.LoadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	var sysOptions []chip8.Option
	if opts.Trace {
		sysOptions = append(sysOptions, chip8.WithTrace(config.CreateTraceHook(logger)))
	}

	sys := chip8.New(sysOptions...)
	if err := sys.Load(data); err != nil {
		return fmt.Errorf("loading program into memory: %w", err)
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
		log.Int("cycles_per_frame", opts.CyclesPerFrame))

	window := sdl.New(logger, sys, opts)
	defer window.Destroy()

	if err := window.Setup("retrochip8 | CHIP-8 emulator"); err != nil {
		return fmt.Errorf("setting up window: %w", err)
	}

	return window.Run(ctx)
}
