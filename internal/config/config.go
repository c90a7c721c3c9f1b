// Package config provides configuration types, defaults, and persistence
// for the editable demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/iw2rmb/editable/internal/log"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Config holds demo configuration loaded through viper.
type Config struct {
	// Content is the initial markup of the edited element.
	Content       string      `mapstructure:"content"`
	HistoryLimit  int         `mapstructure:"history_limit"`
	StartDisabled bool        `mapstructure:"start_disabled"`
	UI            UIConfig    `mapstructure:"ui"`
	Theme         ThemeConfig `mapstructure:"theme"`
	Log           LogConfig   `mapstructure:"log"`
}

// UIConfig toggles the editor chrome.
type UIConfig struct {
	ShowToolbar bool `mapstructure:"show_toolbar"`
	ShowStatus  bool `mapstructure:"show_status"`
	ShowHelp    bool `mapstructure:"show_help"`
	Mouse       bool `mapstructure:"mouse"`
}

// ThemeConfig holds hex colors, e.g. "#7D56F4".
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Caret     string `mapstructure:"caret"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Path  string `mapstructure:"path"`  // default: debug.log
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// DefaultHistoryLimit mirrors the widget default.
const DefaultHistoryLimit = 100

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Content:      "Hello, <b>editable</b>!",
		HistoryLimit: DefaultHistoryLimit,
		UI: UIConfig{
			ShowToolbar: true,
			ShowStatus:  true,
			ShowHelp:    true,
			Mouse:       true,
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#666666",
			Caret:     "#FAFAFA",
		},
		Log: LogConfig{
			Path:  "debug.log",
			Level: "debug",
		},
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("%w: history_limit must be at least 1, got %d", ErrInvalid, c.HistoryLimit)
	}
	for key, v := range map[string]string{
		"theme.highlight": c.Theme.Highlight,
		"theme.subtle":    c.Theme.Subtle,
		"theme.caret":     c.Theme.Caret,
	} {
		if v != "" && !hexColor.MatchString(v) {
			return fmt.Errorf("%w: %s must be a hex color, got %q", ErrInvalid, key, v)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written for new users.
func DefaultConfigTemplate() string {
	return `# editable demo configuration

# Initial markup of the edited element
content: "Hello, <b>editable</b>!"

# Number of snapshots kept for undo/redo
history_limit: 100

# Start read-only; ctrl+t toggles editing
start_disabled: false

ui:
  show_toolbar: true   # Bold/italic/underline and undo/redo state
  show_status: true    # Change counter and history cursor
  show_help: true      # Key binding help line
  mouse: true          # Click to move the caret

theme:
  highlight: "#7D56F4"
  subtle: "#666666"
  caret: "#FAFAFA"

log:
  debug: false
  path: debug.log
  level: debug
`
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
