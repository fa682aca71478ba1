// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votewatch/auth"
)

func init() {
	rootCmd.AddCommand(adminKeyCmd)
}

var adminKeyCmd = &cobra.Command{
	Use:                "admin-key",
	Short:              "Print the X-Admin-Key value for the configured ledger",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok, err := parseConfig(args)
		if err != nil || !ok {
			return err
		}
		if err := cfg.RequireAdminSalt(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateAdminKey(cfg.LedgerName, cfg.AdminKeySalt))
		return nil
	},
}
