package config

import (
	"path/filepath"

	"github.com/dudaspaulo/gerador-de-walka/internal/assets"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".walka.yml"

// dbFile is the SQLite database name inside DataDir.
const dbFile = "walka.db"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        ".walka",
		OutputDir:      "dist",
		AssetPatterns:  append([]string(nil), assets.DefaultPatterns...),
		HighlightTier:  2,
		DefaultArchive: "hotsite",
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// DBPath returns the SQLite database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFile)
}
