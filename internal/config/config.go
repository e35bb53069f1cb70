// Package config loads folio configuration from defaults, an optional TOML
// file, FOLIO_* environment variables and command-line flags, and reloads it
// when the file changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/renato0307/folio/internal/logging"
	"github.com/renato0307/folio/internal/storage"
	"github.com/renato0307/folio/internal/ui"
)

const appName = "folio"

// Config is the resolved configuration.
type Config struct {
	// Theme is the palette name; light/dark is the stored appearance mode.
	Theme    string    `mapstructure:"theme"`
	Storage  string    `mapstructure:"storage"`
	StateDir string    `mapstructure:"state_dir"`
	Content  string    `mapstructure:"content"`
	NoColor  bool      `mapstructure:"no_color"`
	Snapshot bool      `mapstructure:"snapshot"`
	Width    int       `mapstructure:"width"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Logging converts the log section for logging.Init.
func (c LogConfig) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.File,
		Level:      logging.ParseLevel(c.Level),
		Format:     logging.ParseFormat(c.Format),
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"theme":      "theme",
	"storage":    "storage",
	"state-dir":  "state_dir",
	"content":    "content",
	"no-color":   "no_color",
	"snapshot":   "snapshot",
	"width":      "width",
	"log-file":   "log.file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	viper     *viper.Viper
	config    *Config
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager. An empty file searches the XDG config dir
// and the working directory for config.toml; a missing file is not an error
// in that case.
func NewManager(file string) (*Manager, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v}, nil
}

// BindFlags binds the known flags of fs so they override file and env.
func (m *Manager) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := m.viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("theme", "default")
	m.viper.SetDefault("storage", string(storage.KindFile))
	m.viper.SetDefault("state_dir", "")
	m.viper.SetDefault("content", "")
	m.viper.SetDefault("no_color", false)
	m.viper.SetDefault("snapshot", false)
	m.viper.SetDefault("width", 100)
	m.viper.SetDefault("log.file", "")
	m.viper.SetDefault("log.level", "info")
	m.viper.SetDefault("log.format", "text")
	m.viper.SetDefault("log.max_size_mb", 10)
	m.viper.SetDefault("log.max_backups", 3)
}

// Load reads the configuration from all sources.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file %s: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.StateDir == "" {
		dir, err := StateDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine state directory: %w", err)
		}
		config.StateDir = dir
	}
	config.Theme = strings.ToLower(config.Theme)
	config.Storage = strings.ToLower(config.Storage)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func validate(c *Config) error {
	var errs []error
	if !slices.Contains(ui.AvailableThemes(), c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q: must be one of %s", c.Theme, strings.Join(ui.AvailableThemes(), ", ")))
	}
	if !slices.Contains(storage.Kinds(), c.Storage) {
		errs = append(errs, fmt.Errorf("storage %q: must be one of %s", c.Storage, strings.Join(storage.Kinds(), ", ")))
	}
	if c.Width < 20 {
		errs = append(errs, fmt.Errorf("width %d: must be at least 20", c.Width))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be text or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Get returns the current configuration. Nil before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// FileUsed returns the config file read, if any.
func (m *Manager) FileUsed() string {
	return m.viper.ConfigFileUsed()
}

// OnConfigChange registers a callback for reloaded configurations.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch reloads the configuration whenever the config file changes. Invalid
// edits are logged and the previous configuration is kept.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching || m.viper.ConfigFileUsed() == "" {
		return
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleChange(e)
	})
	m.viper.WatchConfig()
	m.watching = true
}

func (m *Manager) handleChange(e fsnotify.Event) {
	log := logging.For("config")
	log.Debug("config change detected", "op", e.Op.String(), "file", e.Name)

	m.mu.Lock()
	config, err := m.unmarshal()
	if err != nil {
		m.mu.Unlock()
		log.Warn("failed to reload config", "error", err)
		return
	}
	m.config = config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(config)
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/folio (default ~/.config/folio).
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/folio (default ~/.local/state/folio).
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, appName), nil
}
