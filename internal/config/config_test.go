package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenDefaultFileAbsent(t *testing.T) {
	// The package test directory carries no config.yaml, so the optional
	// default file resolves to built-in defaults.
	cfg, err := Load(DefaultConfigFile)
	require.NoError(t, err)

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "QSC_Processed_", cfg.OutputPrefix)
	assert.Equal(t, "./processed", cfg.ArchiveDir)
	assert.False(t, cfg.ArchiveOnSuccess)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output_dir: /tmp/qsc-out\narchive_on_success: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/qsc-out", cfg.OutputDir)
	assert.True(t, cfg.ArchiveOnSuccess)
	// Unset options still get defaults.
	assert.Equal(t, "QSC_Processed_", cfg.OutputPrefix)
	assert.Equal(t, "./processed", cfg.ArchiveDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "QSC_Processed_", cfg.OutputPrefix)
}
