// Package config loads runtime settings for the daybook CLI.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the daybook CLI.
//
// Fields:
//   - DatabasePath: location of the SQLite database file.
//   - ExportDir: directory PDF exports are written to.
type Config struct {
	DatabasePath string
	ExportDir    string
}

// LoadDefaults populates c with sensible defaults: the database next to the
// user config dir and exports under the user's home directory.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "daybook.db"
	c.ExportDir = "JournalExports"

	if dir, err := os.UserConfigDir(); err == nil {
		c.DatabasePath = filepath.Join(dir, "daybook", "daybook.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.ExportDir = filepath.Join(home, "JournalExports")
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
