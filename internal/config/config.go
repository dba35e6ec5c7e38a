// Package config loads pr's defaults from ~/.pr/config.yaml, an optional
// overlay file and PR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvHome       = "PR_HOME"
	EnvPageLength = "PR_PAGE_LENGTH"
	EnvLogLevel   = "PR_LOG_LEVEL"
	EnvLogFormat  = "PR_LOG_FORMAT"
)

// Defaults for a missing or partial config file.
const (
	DefaultPageLength      = 66
	DefaultNumberWidth     = 5
	DefaultNumberSeparator = "\t"
	DefaultFirstLineNumber = 1
	DefaultDateFormat      = "Jan 02 15:04 2006"
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "console"

	configFileName = "config.yaml"
)

// Config is the user configuration.
//
// Example:
//
//	page:
//	  length: 72
//	  number_separator: ":"
//	logging:
//	  level: debug
type Config struct {
	Page    PageConfig    `yaml:"page"    json:"page"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// PageConfig holds the pagination defaults. Command line flags override them.
type PageConfig struct {
	Length          int    `yaml:"length"            json:"length"`
	NumberWidth     int    `yaml:"number_width"      json:"number_width"`
	NumberSeparator string `yaml:"number_separator"  json:"number_separator"`
	FirstLineNumber int    `yaml:"first_line_number" json:"first_line_number"`
	// DateFormat is a Go time layout used for header timestamps.
	DateFormat string `yaml:"date_format" json:"date_format"`
	// Encoding is the default IANA charset of inputs.
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Page: PageConfig{
			Length:          DefaultPageLength,
			NumberWidth:     DefaultNumberWidth,
			NumberSeparator: DefaultNumberSeparator,
			FirstLineNumber: DefaultFirstLineNumber,
			DateFormat:      DefaultDateFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the configuration: defaults, then the user config file if it
// exists, then overlayPath if non-empty, then environment overrides.
func Load(overlayPath string) (*Config, error) {
	cfg := Defaults()

	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	if err = cfg.loadFile(filepath.Join(dir, configFileName)); err != nil {
		return nil, err
	}

	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	if err = cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPageLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageLength, err)
		}
		c.Page.Length = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks values that would otherwise fail later in a confusing way.
func (c *Config) Validate() error {
	if c.Page.Length < 1 {
		return fmt.Errorf("page.length must be positive, got %d", c.Page.Length)
	}
	if c.Page.NumberWidth < 1 {
		return fmt.Errorf("page.number_width must be positive, got %d", c.Page.NumberWidth)
	}
	if utf8.RuneCountInString(c.Page.NumberSeparator) != 1 {
		return fmt.Errorf("page.number_separator must be a single character, got %q", c.Page.NumberSeparator)
	}
	if c.Page.DateFormat == "" {
		return errors.New("page.date_format must not be empty")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// Separator returns the line number separator as a rune.
func (c *Config) Separator() rune {
	r, _ := utf8.DecodeRuneInString(c.Page.NumberSeparator)
	return r
}

// GetConfigDir returns the pr configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pr"), nil
}
