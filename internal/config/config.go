// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/spf13/pflag"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`

	// Plugins holds per-plugin tables, e.g. [plugins.autosave].
	Plugins map[string]map[string]any `toml:"plugins"`

	// Undecoded lists keys in the config file that matched no setting.
	Undecoded []string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ExpandTab       bool `toml:"expand_tab"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	WatchFile       bool `toml:"watch_file"`

	// ThemeFile names a TOML theme. Empty selects the built-in theme.
	ThemeFile string `toml:"theme_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ExpandTab:       DefaultExpandTab,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			WatchFile:       DefaultWatchFile,
		},
	}
}

// DefaultConfigPath returns the config file location under the user's
// config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName), nil
}

// DefaultLogPath returns the log file location under the user's cache
// directory, falling back to the temp directory.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName, DefaultLogFileName)
}

// decodeFile reads the TOML file at path on top of cfg. A missing file
// leaves cfg untouched.
func decodeFile(path string, cfg *Config) error {
	metadata, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Logger.LogFilePath == "" {
		c.Logger.LogFilePath = DefaultLogPath()
	}
}

// LoadConfig merges defaults, the TOML file and the command-line flags that
// were set, in that order, then validates the result. An empty path selects
// the default config location. The config is usable even when an error is
// returned.
func LoadConfig(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	var loadErr error
	if path == "" {
		path, loadErr = DefaultConfigPath()
	}
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}

// PluginValue returns a setting from the plugin's table.
func (c *Config) PluginValue(plugin, key string) (any, bool) {
	table, ok := c.Plugins[plugin]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// LogUndecoded reports unknown config keys once the logger is running.
func (c *Config) LogUndecoded() {
	if len(c.Undecoded) > 0 {
		logger.Warnf("Config: Unrecognized keys: %v", c.Undecoded)
	}
}

// BindFlags is a convenience for callers that own the flag set.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.DefineFlags(fs)
	return f
}
