// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/textwriter/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Fonts  FontsConfig   `toml:"fonts"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth           int    `toml:"tab_width"`
	SystemClipboard    bool   `toml:"system_clipboard"`
	SavePromptsForPath bool   `toml:"save_prompts_for_path"`
	DefaultFont        string `toml:"default_font"`
	ThemeFile          string `toml:"theme_file"`
}

// FontsConfig lists what the font dialogs offer.
type FontsConfig struct {
	Presets []string `toml:"presets"`
	Sizes   []int    `toml:"sizes"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:           DefaultTabWidth,
			SystemClipboard:    SystemClipboard,
			SavePromptsForPath: SavePromptsForPath,
			DefaultFont:        DefaultFont,
		},
		Fonts: FontsConfig{
			Presets: append([]string(nil), DefaultFontPresets...),
			Sizes:   append([]int(nil), DefaultFontSizes...),
		},
	}
}

// DefaultPath returns <UserConfigDir>/textwriter/config.toml, or "" if the
// config dir cannot be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file on top of cfg. A missing file is not an error.
// It returns the keys the file contained that were not recognised.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.DefaultFont == "" {
		c.Editor.DefaultFont = defaults.Editor.DefaultFont
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if len(c.Fonts.Presets) == 0 {
		c.Fonts.Presets = defaults.Fonts.Presets
	}

	sizes := c.Fonts.Sizes[:0]
	for _, s := range c.Fonts.Sizes {
		if s > 0 {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		sizes = defaults.Fonts.Sizes
	}
	c.Fonts.Sizes = sizes
}

// Result carries what Load found besides the config itself. The logger is
// not running yet while config loads, so main logs these afterwards.
type Result struct {
	Path      string   // Effective config file path ("" if none)
	Undecoded []string // Unrecognised keys in the file
	FileErr   error    // Error reading or parsing the file; defaults were used
}

// Load orchestrates defaults, the TOML file, flag overrides, and validation.
// A broken config file never aborts startup: the error is returned in
// Result.FileErr and the defaults stay in effect for the file's part.
func Load(configFilePath string, flags *Flags) (*Config, Result) {
	cfg := NewDefaultConfig()
	res := Result{Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	if res.Path != "" {
		fileCfg := NewDefaultConfig()
		undecoded, err := loadFromFile(res.Path, fileCfg)
		if err != nil {
			res.FileErr = err
		} else {
			cfg = fileCfg
			res.Undecoded = undecoded
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, res
}
