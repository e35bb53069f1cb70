package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	m, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, m.Load())

	c := m.Get()
	assert.Equal(t, "default", c.Theme)
	assert.Equal(t, "file", c.Storage)
	assert.Equal(t, filepath.Join(dir, "state", "folio"), c.StateDir)
	assert.Equal(t, 100, c.Width)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Log.File)
	assert.Empty(t, m.FileUsed())
}

func TestLoad_Sources(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config", "folio", "config.toml"), `
theme = "nord"
storage = "sqlite"

[log]
level = "debug"
`)

	t.Run("file", func(t *testing.T) {
		m, err := NewManager("")
		require.NoError(t, err)
		require.NoError(t, m.Load())

		assert.Equal(t, "nord", m.Get().Theme)
		assert.Equal(t, "sqlite", m.Get().Storage)
		assert.Equal(t, "debug", m.Get().Log.Level)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("FOLIO_THEME", "dracula")
		t.Setenv("FOLIO_LOG_LEVEL", "warn")

		m, err := NewManager("")
		require.NoError(t, err)
		require.NoError(t, m.Load())

		assert.Equal(t, "dracula", m.Get().Theme)
		assert.Equal(t, "warn", m.Get().Log.Level)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("FOLIO_STORAGE", "file")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("storage", "", "")
		fs.String("log-level", "", "")
		require.NoError(t, fs.Parse([]string{"--storage", "memory"}))

		m, err := NewManager("")
		require.NoError(t, err)
		require.NoError(t, m.BindFlags(fs))
		require.NoError(t, m.Load())

		assert.Equal(t, "memory", m.Get().Storage)
		assert.Equal(t, "debug", m.Get().Log.Level, "unset flag does not shadow the file")
	})
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown theme", `theme = "solarized"`, "theme \"solarized\""},
		{"unknown storage", `storage = "redis"`, "storage \"redis\""},
		{"narrow width", `width = 5`, "width 5"},
		{"bad log format", "[log]\nformat = \"xml\"", "log.format"},
		{"broken toml", `theme = `, "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			writeConfig(t, path, tt.body)

			m, err := NewManager(path)
			require.NoError(t, err)
			err = m.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("explicit file missing", func(t *testing.T) {
		m, err := NewManager(filepath.Join(dir, "missing.toml"))
		require.NoError(t, err)
		assert.Error(t, m.Load())
	})
}

func TestWatch_Reloads(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "watched.toml")
	writeConfig(t, path, `theme = "default"`)

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	changed := make(chan string, 4)
	m.OnConfigChange(func(c *Config) { changed <- c.Theme })
	m.Watch()
	m.Watch()

	writeConfig(t, path, `theme = "dracula"`)

	// a write can surface as several events; wait for the final content
	deadline := time.After(5 * time.Second)
	for theme := ""; theme != "dracula"; {
		select {
		case theme = <-changed:
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
	assert.Equal(t, "dracula", m.Get().Theme)
}

func TestHandleChange_InvalidKeepsPrevious(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.toml")
	writeConfig(t, path, `theme = "nord"`)

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	called := false
	m.OnConfigChange(func(*Config) { called = true })

	m.viper.Set("theme", "bogus")
	m.handleChange(fsnotifyWrite(path))

	assert.False(t, called)
	assert.Equal(t, "nord", m.Get().Theme)
}

func fsnotifyWrite(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}
