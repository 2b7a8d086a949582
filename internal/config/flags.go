// internal/config/flags.go
package config

import (
	"fmt"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags. Only flags that were
// set on the command line override the config file.
type Flags struct {
	fs *pflag.FlagSet

	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	TabWidth        int
	ScrollOff       int
	ExpandTab       bool
	SystemClipboard bool
	WatchFile       bool
	ThemeFile       string
	EnableTags      []string
	DisableTags     []string
	EnablePkgs      []string
	DisablePkgs     []string
	EnableFiles     []string
	DisableFiles    []string
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "path of the log file")
	fs.IntVar(&f.TabWidth, "tabwidth", DefaultTabWidth, "columns per tab stop and spaces inserted by Tab")
	fs.IntVar(&f.ScrollOff, "scrolloff", DefaultScrollOff, "lines of context kept above and below the cursor")
	fs.BoolVar(&f.ExpandTab, "expandtab", DefaultExpandTab, "insert spaces instead of a tab character")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "use the system clipboard")
	fs.BoolVar(&f.WatchFile, "watch", DefaultWatchFile, "warn when the file changes on disk")
	fs.StringVar(&f.ThemeFile, "theme", "", "path of a TOML theme file")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "only log debug messages with these tags")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "never log messages with these tags")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "only log messages from these packages")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "never log messages from these packages")
	fs.StringSliceVar(&f.EnableFiles, "log-files", nil, "only log messages from these source files")
	fs.StringSliceVar(&f.DisableFiles, "log-disable-files", nil, "never log messages from these source files")
}

// ApplyOverrides copies the flags that were explicitly set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "tabwidth":
			if f.TabWidth > 0 {
				cfg.Editor.TabWidth = f.TabWidth
			}
		case "scrolloff":
			if f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = f.ScrollOff
			}
		case "expandtab":
			cfg.Editor.ExpandTab = f.ExpandTab
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "watch":
			cfg.Editor.WatchFile = f.WatchFile
		case "theme":
			cfg.Editor.ThemeFile = f.ThemeFile
		case "log-tags":
			cfg.Logger.EnabledTags = f.EnableTags
		case "log-disable-tags":
			cfg.Logger.DisabledTags = f.DisableTags
		case "log-packages":
			cfg.Logger.EnabledPackages = f.EnablePkgs
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = f.DisablePkgs
		case "log-files":
			cfg.Logger.EnabledFiles = f.EnableFiles
		case "log-disable-files":
			cfg.Logger.DisabledFiles = f.DisableFiles
		}
	})
}
