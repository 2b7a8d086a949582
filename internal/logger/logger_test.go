package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	initOnce.Do(func() {})
	var out bytes.Buffer
	setup(cfg, &out)
	return &out
}

func TestLevelFiltering(t *testing.T) {
	out := capture(t, Config{LogLevel: "warn"})

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, out.String(), "quiet 1")
	assert.Contains(t, out.String(), "loud 2")
	assert.Contains(t, out.String(), "source=logger_test.go", "source points at the caller")
}

func TestTagFiltering(t *testing.T) {
	out := capture(t, Config{LogLevel: "debug", EnabledTags: []string{"History"}})

	DebugTagf("history", "kept")
	DebugTagf("find", "dropped tag")
	Debugf("dropped untagged")
	Errorf("errors always pass")

	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "tag=history")
	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "errors always pass")
}

func TestDisabledTagWins(t *testing.T) {
	out := capture(t, Config{
		LogLevel:     "debug",
		EnabledTags:  []string{"core"},
		DisabledTags: []string{"core"},
	})

	DebugTagf("core", "never")
	assert.Empty(t, out.String())
}

func TestPackageAndFileFiltering(t *testing.T) {
	out := capture(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	assert.Empty(t, out.String())

	out = capture(t, Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}})
	Infof("from test file")
	assert.Empty(t, out.String())

	out = capture(t, Config{LogLevel: "debug", EnabledFiles: []string{"logger_test.go"}})
	Infof("from test file")
	assert.Contains(t, out.String(), "from test file")
}

func TestParseLevel(t *testing.T) {
	for name, ok := range map[string]bool{"debug": true, "WARNING": true, "err": true, "": true, "loud": false} {
		_, got := ParseLevel(name)
		assert.Equal(t, ok, got, name)
	}
}
