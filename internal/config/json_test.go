package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"database_path": "/tmp/j.db"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"daybook", "-c", file}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	exportDir := cfg.ExportDir

	parseJson(cfg)

	assert.Equal(t, "/tmp/j.db", cfg.DatabasePath)
	assert.Equal(t, exportDir, cfg.ExportDir, "absent fields keep defaults")
}

func TestParseJson_NoConfigFlag(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"daybook"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg

	parseJson(cfg)
	assert.Equal(t, before, *cfg)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"daybook", "-d", "/tmp/flag.db", "-e", "/tmp/exports"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
}
