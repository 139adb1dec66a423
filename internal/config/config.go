// =============================================================================
// gosort - Configuration Module
// =============================================================================
//
// This module loads the optional settings file. Settings provide defaults
// that command-line flags override; the sort options themselves (mode,
// reverse, unique, ...) always come from the command line.
//
// CONFIGURATION FILES:
//   gosort.yaml / gosort.yml : YAML settings
//   gosort.toml              : TOML settings
//
// EXAMPLE (YAML):
//   output: "sorted/{original}{ext}"
//   field_separator: ","
//   log_level: "debug"
//   log_format: "json"
//   max_line_bytes: 4194304
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up when --config is not given.
const DefaultPath = "gosort.yaml"

// =============================================================================
// SETTINGS STRUCTURE
// =============================================================================

// Settings holds the file-based application settings.
type Settings struct {
	// Output is the destination path. It may contain the placeholders
	// understood by utils.ExpandOutputPath.
	// Default: "output.txt"
	Output string `yaml:"output" toml:"output"`

	// FieldSeparator splits columns on an exact string instead of runs of
	// whitespace. "\t" and "tab" both mean a tab character.
	// Default: "" (whitespace)
	FieldSeparator string `yaml:"field_separator" toml:"field_separator"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// LogFormat selects the log encoding.
	// Valid values: "console", "json"
	// Default: "console"
	LogFormat string `yaml:"log_format" toml:"log_format"`

	// MaxLineBytes is the longest input line accepted.
	// Default: 1048576
	MaxLineBytes int `yaml:"max_line_bytes" toml:"max_line_bytes"`
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads settings from path.
//
// When required is false a missing file is not an error and the defaults are
// returned. The format is chosen by extension: .toml is TOML, anything else
// is YAML.
func Load(path string, required bool) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &settings)
	} else {
		err = yaml.Unmarshal(data, &settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&settings)

	if err := validate(&settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &settings, nil
}

// applyDefaults sets default values for any unset option.
func applyDefaults(s *Settings) {
	if s.Output == "" {
		s.Output = "output.txt"
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.LogFormat == "" {
		s.LogFormat = "console"
	}
	if s.MaxLineBytes == 0 {
		s.MaxLineBytes = 1024 * 1024
	}
	s.FieldSeparator = NormalizeSeparator(s.FieldSeparator)
}

// validate checks the values that defaults cannot fix.
func validate(s *Settings) error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", s.LogLevel)
	}

	switch strings.ToLower(s.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json; got %q", s.LogFormat)
	}

	if s.MaxLineBytes < 0 {
		return fmt.Errorf("max_line_bytes must be positive; got %d", s.MaxLineBytes)
	}

	return nil
}

// NormalizeSeparator maps the spelled-out forms of common separators to the
// character itself.
func NormalizeSeparator(sep string) string {
	switch sep {
	case "\\t", "tab", "TAB":
		return "\t"
	case "space":
		return " "
	default:
		return sep
	}
}
