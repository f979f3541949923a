// Package config loads diffmend settings from defaults, an optional YAML
// file and DIFFMEND_ environment variables, in that order of precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/fs"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "DIFFMEND_"

// Config holds all diffmend settings.
type Config struct {
	Heading  HeadingConfig  `koanf:"heading"`
	Overflow OverflowConfig `koanf:"overflow"`
	Input    InputConfig    `koanf:"input"`
	Output   OutputConfig   `koanf:"output"`
	History  HistoryConfig  `koanf:"history"`
	Log      LogConfig      `koanf:"log"`
	UI       UIConfig       `koanf:"ui"`
}

// HeadingConfig describes how section headings are recognized.
type HeadingConfig struct {
	Open  string `koanf:"open"  validate:"required"`
	Close string `koanf:"close" validate:"required"`
}

// OverflowConfig describes the block that receives lines without a section.
type OverflowConfig struct {
	Separator string `koanf:"separator" validate:"required"`
	Marker    string `koanf:"marker"    validate:"required"`
}

// InputConfig restricts which files may be compared.
type InputConfig struct {
	Extensions []string `koanf:"extensions" validate:"min=1,dive,startswith=."`
}

// OutputConfig controls where merged documents are written.
type OutputConfig struct {
	Dir        string   `koanf:"dir"`
	Name       string   `koanf:"name"`
	Extension  string   `koanf:"extension"  validate:"required,startswith=."`
	Extensions []string `koanf:"extensions" validate:"min=1,dive,startswith=."`
}

// HistoryConfig controls the merge history log.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"` // Empty means the default state directory
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

// UIConfig controls the interactive review screen.
type UIConfig struct {
	Theme string `koanf:"theme" validate:"oneof=dark light"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Heading: HeadingConfig{
			Open:  diffmend.DefaultHeadingMarker.Open,
			Close: diffmend.DefaultHeadingMarker.Close,
		},
		Overflow: OverflowConfig{
			Separator: diffmend.DefaultOverflow.Separator,
			Marker:    diffmend.DefaultOverflow.Marker,
		},
		Input: InputConfig{
			Extensions: append([]string(nil), fs.DefaultInputExtensions...),
		},
		Output: OutputConfig{
			Dir:        ".",
			Name:       "merged",
			Extension:  ".txt",
			Extensions: append([]string(nil), fs.DefaultOutputExtensions...),
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// HeadingMarker returns the configured heading convention.
func (c *Config) HeadingMarker() diffmend.HeadingMarker {
	return diffmend.HeadingMarker{Open: c.Heading.Open, Close: c.Heading.Close}
}

// OverflowBlock returns the configured overflow block.
func (c *Config) OverflowBlock() diffmend.Overflow {
	return diffmend.Overflow{Separator: c.Overflow.Separator, Marker: c.Overflow.Marker}
}

// HistoryPath returns the configured history path or the default one.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return fs.DefaultHistoryPath()
}

// DefaultPath returns $XDG_CONFIG_HOME/diffmend/config.yaml, falling back to
// ~/.config. Returns "" if neither can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "diffmend", "config.yaml")
}

// ResolvePath returns explicit if set, otherwise the default path when a
// file exists there, otherwise "".
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	p := DefaultPath()
	if p == "" {
		return ""
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
