package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.True(t, cfg.Editor.ExpandTab)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.NotEmpty(t, cfg.Logger.LogFilePath)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["event"]

[editor]
tab_width = 8
expand_tab = false
mystery = 1
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.False(t, cfg.Editor.ExpandTab)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"event"}, cfg.Logger.DisabledTags)
	assert.Equal(t, []string{"editor.mystery"}, cfg.Undecoded)
}

func TestLoadConfig_InvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "shouting"
[editor]
tab_width = -2
scroll_off = -1
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "[editor\ntab_width = ")

	cfg, err := LoadConfig(path, nil)

	assert.ErrorContains(t, err, "failed to parse config file")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

// TestFlagsOverrideOnlyWhenSet verifies that flag defaults never clobber
// values from the config file.
func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 8\nsystem_clipboard = false\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--scrolloff=7", "--log-tags=history,find", "--loglevel", "warn"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, 7, cfg.Editor.ScrollOff)
	assert.Equal(t, []string{"history", "find"}, cfg.Logger.EnabledTags)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
}

func TestPluginValue(t *testing.T) {
	path := writeConfig(t, `
[plugins.autosave]
enabled = true
delay = "3s"
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Undecoded)

	v, ok := cfg.PluginValue("autosave", "enabled")
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = cfg.PluginValue("autosave", "delay")
	require.True(t, ok)
	assert.Equal(t, "3s", v)

	_, ok = cfg.PluginValue("autosave", "missing")
	assert.False(t, ok)
	_, ok = cfg.PluginValue("wordcount", "enabled")
	assert.False(t, ok)
}
