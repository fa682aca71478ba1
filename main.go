// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votewatch/cliparse"
	"github.com/danielhkuo/votewatch/db"
	"github.com/danielhkuo/votewatch/ledger"
)

// Flags are parsed by cliparse so that every command shares one flag set
// with environment fallback.
var rootCmd = &cobra.Command{
	Use:                "votewatch",
	Short:              "Vote ledger with duplicate-vote fraud detection",
	Long:               "votewatch records one vote per voter ID, logs repeat attempts as fraud and reports live statistics.",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runMenu,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("votewatch failed", "error", err)
		os.Exit(1)
	}
}

// parseConfig wraps cliparse.ParseFlags; ok is false when -h was requested.
func parseConfig(args []string) (cfg cliparse.Config, ok bool, err error) {
	cfg, err = cliparse.ParseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return cliparse.Config{}, false, nil
	}
	if err != nil {
		return cliparse.Config{}, false, err
	}
	return cfg, true, nil
}

// openService builds the configured store and a Service over it. The
// returned cleanup func releases the database connection, if any.
func openService(ctx context.Context, cfg cliparse.Config, logger *slog.Logger) (*ledger.Service, func(), error) {
	var store ledger.Store
	cleanup := func() {}

	switch cfg.DatabaseType {
	case db.DialectMemory:
		store = ledger.NewMemoryStore()
	default:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		sqlStore, err := db.NewStore(conn, cfg.DatabaseType)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		logger.Info("Database schema ready", "backend", cfg.DatabaseType)
		store = sqlStore
		cleanup = func() { conn.Close() }
	}

	svc, err := ledger.NewService(ctx, store, ledger.Options{
		Logger:     logger,
		Candidates: cfg.Candidates,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
