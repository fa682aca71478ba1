// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votewatch/middleware"
	"github.com/danielhkuo/votewatch/router"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:                "serve",
	Short:              "Serve the vote ledger over HTTP",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok, err := parseConfig(args)
		if err != nil || !ok {
			return err
		}
		if err := cfg.RequireAdminSalt(); err != nil {
			return err
		}

		svc, cleanup, err := openService(cmd.Context(), cfg, slog.Default())
		if err != nil {
			return err
		}
		defer cleanup()

		server := http.Server{
			Handler:           middleware.CORS(router.NewRouter(svc, cfg)),
			Addr:              ":" + strconv.Itoa(cfg.Port),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// signal.Notify requires the channel to be buffered
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(ctrlc)
		go func() {
			<-ctrlc
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				slog.Error("Shutdown failed", "error", err)
				server.Close()
			}
		}()

		slog.Info("Listening", "port", cfg.Port, "ledger", cfg.LedgerName, "backend", cfg.DatabaseType)
		err = server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		slog.Info("Server closed")
		return nil
	},
}
