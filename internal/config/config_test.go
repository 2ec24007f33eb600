package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.MaxPlayers != 0 {
		t.Fatalf("expected unlimited players by default, got %d", cfg.MaxPlayers)
	}
	if cfg.MaxNameLength != 20 || cfg.MaxChatLength != 500 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MAX_PLAYERS", "8")
	t.Setenv("MAX_NAME_LENGTH", "32")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")

	cfg := Load()
	if cfg.MaxPlayers != 8 {
		t.Fatalf("expected MaxPlayers 8, got %d", cfg.MaxPlayers)
	}
	if cfg.MaxNameLength != 32 {
		t.Fatalf("expected MaxNameLength 32, got %d", cfg.MaxNameLength)
	}
	if cfg.DBMaxOpenConns != 5 {
		t.Fatalf("expected DBMaxOpenConns 5, got %d", cfg.DBMaxOpenConns)
	}
	if cfg.MaxChatLength != 500 {
		t.Fatalf("expected untouched default, got %d", cfg.MaxChatLength)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("MAX_PLAYERS", "many")
	t.Setenv("MAX_NAME_LENGTH", "-3")

	cfg := Load()
	if cfg.MaxPlayers != 0 || cfg.MaxNameLength != 20 {
		t.Fatalf("expected defaults for invalid input, got %+v", cfg)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file must be a no-op, got %v", err)
	}
}

func TestLoadDotEnvReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MAX_CHAT_LENGTH=250\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("MAX_CHAT_LENGTH", "")
	os.Unsetenv("MAX_CHAT_LENGTH")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("MAX_CHAT_LENGTH") })
	if cfg := Load(); cfg.MaxChatLength != 250 {
		t.Fatalf("expected MaxChatLength 250 from file, got %d", cfg.MaxChatLength)
	}
}
