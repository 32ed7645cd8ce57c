package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/shrek198/thrive-well-tracker/internal/app"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	DataDir   string `toml:"data_dir"`
	Backend   string `toml:"backend"`
	ExportDir string `toml:"export_dir"`
	LogLevel  string `toml:"log_level"`
}

// Load resolves configuration in precedence order: defaults, then the TOML
// config file if present, then THRIVE_* environment variables (a .env file
// in the working directory is honored).
func Load(path string) (*Config, error) {
	dataDir, err := app.DefaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		DataDir:   dataDir,
		Backend:   BackendFile,
		ExportDir: ".",
		LogLevel:  "warn",
	}

	if path == "" {
		path, err = app.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if v := os.Getenv("THRIVE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("THRIVE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("THRIVE_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("THRIVE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("invalid backend %q (use file or sqlite)", cfg.Backend)
	}
	return cfg, nil
}
