package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "division.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lyrics_dir: songs\nseed: 12\nredis_url: localhost:6379\n"), 0644))
	t.Setenv("SEED", "99")
	t.Setenv("ROLE_FILE", "roles.txt")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("songs", cfg.LyricsDir)
	assert.Equal("roles.txt", cfg.RoleFile)
	assert.Equal(DefaultOutputDir, cfg.OutputDir)
	assert.Equal(int64(99), cfg.Seed)
	assert.Equal("localhost:6379", cfg.RedisURL)
}

func TestLoadBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED", "soon")

	_, err := Load("")
	assert.ErrorContains(t, err, "SEED")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
