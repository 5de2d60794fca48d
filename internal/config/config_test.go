package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/devfile/internal/export"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", DefaultDataDir, "")
	fs.String("format", DefaultFormat, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devfile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Empty(t, cfg.Tables)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "data_dir: /opt/cubemx/db\nformat: json\noutput_dir: out\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cubemx/db", cfg.DataDir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, export.JSON, cfg.OutputFormat())
	assert.Equal(t, path, cfg.File)

	t.Setenv("DEVFILE_OUTPUT_DIR", "env-out")
	t.Setenv("DEVFILE_FORMAT", "cbor")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.OutputDir)
	assert.Equal(t, "cbor", cfg.Format)

	// Unchanged flags keep the lower layers.
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--data-dir", "flag-db"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "flag-db", cfg.DataDir)
	assert.Equal(t, "cbor", cfg.Format)

	fs = testFlags()
	require.NoError(t, fs.Parse([]string{"--format", "yaml", "-v"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/opt/cubemx/db", cfg.DataDir)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("tables: my-tables.yaml\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "my-tables.yaml", cfg.Tables)
	assert.Equal(t, DefaultFile, cfg.File)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "format: xml\n"), nil)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
