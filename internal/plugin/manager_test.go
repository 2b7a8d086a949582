package plugin_test

import (
	"errors"
	"testing"

	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Initialize(plugin.EditorAPI) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Shutdown() error {
	*r.log = append(*r.log, "shutdown "+r.name)
	return nil
}

func TestRegisterRejectsDuplicatesAndEmptyNames(t *testing.T) {
	var log []string
	m := plugin.NewManager()

	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))
	assert.Error(t, m.Register(&recorder{name: "a", log: &log}))
	assert.Error(t, m.Register(&recorder{name: "", log: &log}))

	p, ok := m.GetPlugin("a")
	assert.True(t, ok)
	assert.Equal(t, "a", p.Name())
	_, ok = m.GetPlugin("b")
	assert.False(t, ok)
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	boom := errors.New("boom")
	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))
	require.NoError(t, m.Register(&recorder{name: "b", initErr: boom, log: &log}))
	require.NoError(t, m.Register(&recorder{name: "c", log: &log}))

	err := m.InitializePlugins(&plugintest.FakeAPI{})
	assert.ErrorIs(t, err, boom)

	m.ShutdownPlugins()
	assert.Equal(t, []string{
		"init a", "init b", "init c",
		"shutdown c", "shutdown b", "shutdown a",
	}, log)
}
