package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/theme"
)

// ThemeAPI is the part of the application the theme command drives.
type ThemeAPI interface {
	Theme() *theme.Theme
	SetTheme(th *theme.Theme)
}

// RegisterAppCommands registers built-in commands that sit outside the
// editing core, like theme.
func RegisterAppCommands(api plugin.EditorAPI, themeAPI ThemeAPI) {
	RegisterThemeCommands(api, themeAPI)
}

// RegisterThemeCommands registers only theme-related commands.
//
//	theme            show the active theme
//	theme default    switch to the built-in theme
//	theme <path>     load a TOML theme file
func RegisterThemeCommands(api plugin.EditorAPI, themeAPI ThemeAPI) {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", themeAPI.Theme().Name)
			return nil
		}

		target := strings.Join(args, " ") // paths may contain spaces
		var th *theme.Theme
		if target == "default" {
			th = theme.Default()
		} else {
			loaded, err := theme.LoadThemeFromFile(target)
			if err != nil {
				return fmt.Errorf("theme not changed: %w", err)
			}
			th = loaded
		}
		themeAPI.SetTheme(th)
		api.SetStatusMessage("Theme set to: %s", th.Name)
		return nil
	}

	if err := api.RegisterCommand("theme", themeCmdFunc); err != nil {
		logger.Warnf("Failed to register 'theme' command: %v", err)
	}
}
