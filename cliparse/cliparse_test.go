// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// clearEnv unsets every variable ParseFlags reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY_SALT", "LEDGER_NAME", "DEFAULT_CANDIDATES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "memory" {
		t.Errorf("expected memory backend, got %q", cfg.DatabaseType)
	}
	if cfg.LedgerName != "default" {
		t.Errorf("expected ledger name default, got %q", cfg.LedgerName)
	}
	if !slices.Equal(cfg.Candidates, []string{"Candidate1", "Candidate2", "Candidate3"}) {
		t.Errorf("unexpected default candidates %v", cfg.Candidates)
	}
	if err := cfg.RequireAdminSalt(); err == nil {
		t.Error("expected missing admin salt to be reported")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("LEDGER_NAME", "council")
	t.Setenv("DEFAULT_CANDIDATES", "Ada, Grace ,,Linus")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database config %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.AdminKeySalt != "test-salt" {
		t.Errorf("expected admin salt from env, got %q", cfg.AdminKeySalt)
	}
	if cfg.LedgerName != "council" {
		t.Errorf("expected ledger name council, got %q", cfg.LedgerName)
	}
	if !slices.Equal(cfg.Candidates, []string{"Ada", "Grace", "Linus"}) {
		t.Errorf("unexpected candidates %v", cfg.Candidates)
	}
	if err := cfg.RequireAdminSalt(); err != nil {
		t.Errorf("RequireAdminSalt() error = %v", err)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{
		"-env-file", "",
		"-p", "8080",
		"-t", "sqlite",
		"-d", "file:test.db",
		"-admin-salt", "s1",
		"-candidates", "Red,Blue",
	})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKeySalt != "s1" {
		t.Errorf("CLI should override env: expected s1, got %q", cfg.AdminKeySalt)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "file:test.db" {
		t.Errorf("unexpected database config %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if !slices.Equal(cfg.Candidates, []string{"Red", "Blue"}) {
		t.Errorf("unexpected candidates %v", cfg.Candidates)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_NAME", "from-process")

	path := filepath.Join(t.TempDir(), "votewatch.env")
	content := "ADMIN_KEY_SALT=file-salt\nLEDGER_NAME=from-file\nPORT=4000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AdminKeySalt != "file-salt" {
		t.Errorf("expected admin salt from env file, got %q", cfg.AdminKeySalt)
	}
	if cfg.Port != 4000 {
		t.Errorf("expected port from env file, got %d", cfg.Port)
	}
	// Process environment wins over the file
	if cfg.LedgerName != "from-process" {
		t.Errorf("expected process env to win, got %q", cfg.LedgerName)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "does-not-exist.env")
	if _, err := ParseFlags([]string{"-env-file", path}); err != nil {
		t.Errorf("expected missing env file to be ignored, got %v", err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "invalid PORT",
			env:  map[string]string{"PORT": "not-a-port"},
		},
		{
			name: "unknown backend",
			args: []string{"-t", "mongo"},
		},
		{
			name: "postgres without URL",
			args: []string{"-t", "postgres"},
		},
		{
			name: "unknown flag",
			args: []string{"-salt", "x"},
		},
		{
			name: "stray positional argument",
			args: []string{"-ledger", "council", "serv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env-file", ""}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
