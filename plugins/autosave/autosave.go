package autosave

import (
	"time"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/utils"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled = false
	defaultDelay   = 2 * time.Second
)

// AutoSave saves the document once editing has paused for the configured
// delay.
type AutoSave struct {
	api plugin.EditorAPI

	// Configuration, fixed after Initialize
	enabled bool
	delay   time.Duration

	debouncer utils.Debouncer
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled: defaultEnabled,
		delay:   defaultDelay,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and subscribes to edits if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	if enabledVal, ok := api.PluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if delayVal, ok := api.PluginConfigValue(pluginName, "delay"); ok {
		if strVal, isStr := delayVal.(string); isStr {
			parsed, err := time.ParseDuration(strVal)
			switch {
			case err != nil:
				logger.Warnf("%s: Invalid format for 'delay' config ('%s'): %v. Using default (%v)", pluginName, strVal, err, p.delay)
			case parsed <= 0:
				logger.Warnf("%s: 'delay' config must be positive ('%s'). Using default (%v)", pluginName, strVal, p.delay)
			default:
				p.delay = parsed
			}
		} else {
			logger.Warnf("%s: Invalid type for 'delay' config (%T), using default (%v)", pluginName, delayVal, p.delay)
		}
	}

	logger.Infof("%s initialized. Enabled: %v, Delay: %v", pluginName, p.enabled, p.delay)
	if p.enabled {
		api.SubscribeEvent(event.TypeBufferModified, p.handleBufferModified)
	}
	return nil
}

// Shutdown cancels a pending save.
func (p *AutoSave) Shutdown() error {
	p.debouncer.Stop()
	return nil
}

// handleBufferModified restarts the idle timer. The save itself runs on
// the main loop.
func (p *AutoSave) handleBufferModified(event.Event) bool {
	p.debouncer.Debounce(p.delay, func() {
		p.api.Post(p.saveIfModified)
	})
	return false
}

// saveIfModified saves a modified, named document.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsModified() {
		logger.Debugf("%s: Buffer not modified, skipping auto-save.", p.Name())
		return
	}

	filePath := p.api.FilePath()
	if filePath == "" {
		logger.Debugf("%s: Buffer is modified but has no name, skipping auto-save.", p.Name())
		return
	}

	logger.Infof("%s: Auto-saving modified buffer: %s", p.Name(), filePath)
	if err := p.api.SaveBuffer(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		p.api.SetStatusMessage("Auto-save failed: %v", err)
	}
}
