package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coverart.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[extract]
output_dir = "art"
max_cover_size = 1048576
measure = true

[embed]
backup_suffix = ".orig"
strict_mime = true
validate = true

[batch]
store_dir = "/var/covers"
extensions = [".flac"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, ExtractConfig{OutputDir: "art", MaxCoverSize: 1 << 20, Measure: true}, cfg.Extract)
	assert.Equal(t, ".orig", cfg.Embed.BackupSuffix)
	assert.True(t, cfg.Embed.StrictMIME)
	assert.False(t, cfg.Embed.PreserveModTime)
	assert.True(t, cfg.Embed.Validate)
	assert.Equal(t, "/var/covers", cfg.Batch.StoreDir)
	assert.Equal(t, []string{".flac"}, cfg.Batch.Extensions)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[extract]\nmeasure = true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Extract.Measure)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultStoreDir, cfg.Batch.StoreDir)
	assert.Equal(t, DefaultExtensions, cfg.Batch.Extensions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"debug\"\n")

	t.Setenv("COVERART_LOG_LEVEL", "error")
	t.Setenv("COVERART_EMBED_PRESERVE_MOD_TIME", "true")
	t.Setenv("COVERART_BATCH_EXTENSIONS", ".mp3,.opus")
	t.Setenv("COVERART_EXTRACT_MAX_COVER_SIZE", "512")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.True(t, cfg.Embed.PreserveModTime)
	assert.Equal(t, []string{".mp3", ".opus"}, cfg.Batch.Extensions)
	assert.Equal(t, 512, cfg.Extract.MaxCoverSize)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeConfig(t, "[log\nlevel="))
	assert.ErrorContains(t, err, "decode config")

	t.Setenv("COVERART_EXTRACT_MAX_COVER_SIZE", "lots")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "environment overrides")
}
