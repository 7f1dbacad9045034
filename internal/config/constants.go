package config

import "time"

// Base application details
const AppName = "textwriter"
const AppTitle = "TextWriter"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "textwriter.log"

// UI Layout
const MenuBarHeight = 1
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor
const DefaultTabWidth = 4
const DefaultScrollOff = 2
const SystemClipboard = true
const SavePromptsForPath = true
const DefaultFont = "Monospace 12"

// DefaultFontPresets are offered by the font picker when the config has none.
var DefaultFontPresets = []string{
	"Monospace 12",
	"Monospace Bold 12",
	"Monospace Italic 12",
	"Sans 12",
	"Sans Bold 12",
	"Serif 12",
	"Serif Italic 12",
}

// DefaultFontSizes are offered by Change Font Size.
var DefaultFontSizes = []int{8, 9, 10, 11, 12, 14, 16, 18, 20, 24, 28, 36}
