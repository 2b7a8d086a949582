package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/quill/internal/plugin/plugintest"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type themeHolder struct {
	th *theme.Theme
}

func (h *themeHolder) Theme() *theme.Theme      { return h.th }
func (h *themeHolder) SetTheme(th *theme.Theme) { h.th = th }

func TestThemeCommand(t *testing.T) {
	api := &plugintest.FakeAPI{}
	holder := &themeHolder{th: theme.Default()}
	RegisterAppCommands(api, holder)

	cmd, ok := api.Commands["theme"]
	require.True(t, ok)

	require.NoError(t, cmd(nil))
	assert.Equal(t, "Current theme: "+theme.Default().Name, api.Messages[0])

	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Paper"
[styles.Default]
fg = "black"
bg = "white"
`), 0o644))

	require.NoError(t, cmd([]string{path}))
	assert.Equal(t, "Paper", holder.th.Name)
	assert.Equal(t, "Theme set to: Paper", api.Messages[1])

	err := cmd([]string{filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
	assert.Equal(t, "Paper", holder.th.Name, "a failed load keeps the active theme")

	require.NoError(t, cmd([]string{"default"}))
	assert.Equal(t, theme.Default().Name, holder.th.Name)
}
