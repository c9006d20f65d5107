package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  http-port: :8088\n")

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	// YAML 中给出的值生效
	assert.Equal(t, ":8088", cfg.Server.HttpPort)

	// 未给出的字段填充默认值
	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ".md", cfg.Vault.NoteExt)
	assert.Equal(t, "<!-- Today you worked on: -->", cfg.Vault.Marker)
	assert.Equal(t, "30d", cfg.App.RunLogRetentionTime)
	assert.True(t, cfg.Tracer.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigVaultSection(t *testing.T) {
	path := writeConfig(t, `
vault:
  path: /data/notes
  note-ext: .markdown
  daily-note-folder: journal
  marker: "<!-- touched -->"
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/notes", cfg.Vault.Path)
	assert.Equal(t, ".markdown", cfg.Vault.NoteExt)
	assert.Equal(t, "journal", cfg.Vault.DailyNoteFolder)
	assert.Equal(t, "<!-- touched -->", cfg.Vault.Marker)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, "server:\n  http-port: :8088\n")

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)

	cfg.Vault.DailyNoteFolder = "journal"
	require.NoError(t, cfg.Save())

	cfg2, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "journal", cfg2.Vault.DailyNoteFolder)
	assert.Equal(t, ":8088", cfg2.Server.HttpPort)
}

func TestDurationHelpers(t *testing.T) {
	cfg := &AppConfig{}
	cfg.App.WatchInterval = "500ms"
	assert.Equal(t, 500*time.Millisecond, cfg.GetWatchInterval())

	cfg.App.WatchInterval = "bogus"
	assert.Equal(t, 2*time.Second, cfg.GetWatchInterval())

	cfg.App.RunLogRetentionTime = "7d"
	assert.Equal(t, 7*24*time.Hour, cfg.GetRunLogRetention())

	cfg.App.RunLogRetentionTime = ""
	assert.Equal(t, time.Duration(0), cfg.GetRunLogRetention())
}
