// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/votewatch/console"
)

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:                "menu",
	Short:              "Run the interactive operator console (default)",
	DisableFlagParsing: true,
	RunE:               runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, ok, err := parseConfig(args)
	if err != nil || !ok {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Only warnings reach stderr so the menu output stays readable
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	svc, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	menu := console.NewMenu(svc, os.Stdin, cmd.OutOrStdout())
	fd := os.Stdin.Fd()
	menu.Interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return menu.Run(ctx)
}
