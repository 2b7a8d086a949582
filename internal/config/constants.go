package config

import "time"

// Base application details
const AppName = "quill"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "quill.log"

// UI Layout: status line plus message/prompt line
const StatusBarHeight = 2

// Status Bar
const MessageTimeout = 4 * time.Second

// QuitConfirmTimeout is how long a second quit press is awaited when the
// document has unsaved changes.
const QuitConfirmTimeout = 2 * time.Second

// WatchDebounce delays reacting to file system notifications so that a
// burst of writes is reported once.
const WatchDebounce = 150 * time.Millisecond

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultExpandTab = true
const DefaultWatchFile = true
const SystemClipboard = true
