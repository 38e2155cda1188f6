// Package config loads csvkit command settings from a YAML or TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oleg578/csvkit"
	"github.com/oleg578/csvkit/dict"
	"github.com/oleg578/csvkit/internal/logging"
)

// Config holds all csvkit command configuration.
type Config struct {
	Parser     ParserConfig     `yaml:"parser" toml:"parser"`
	Dictionary DictionaryConfig `yaml:"dictionary" toml:"dictionary"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// ParserConfig mirrors csvkit.Config with single-character strings for the delimiter and quote.
type ParserConfig struct {
	Delimiter    string `yaml:"delimiter" toml:"delimiter"`
	Quote        string `yaml:"quote" toml:"quote"`
	QuotedFields bool   `yaml:"quoted_fields" toml:"quoted_fields"`
	TrimSpace    bool   `yaml:"trim_space" toml:"trim_space"`
}

// DictionaryConfig configures dictionaries built by the lookup command.
type DictionaryConfig struct {
	Capacity int `yaml:"capacity" toml:"capacity"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format     string `yaml:"format" toml:"format"` // console, json
	File       string `yaml:"file" toml:"file"`
	MaxSize    int    `yaml:"max_size" toml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAge     int    `yaml:"max_age" toml:"max_age"` // days
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Delimiter:    ",",
			Quote:        `"`,
			QuotedFields: true,
		},
		Dictionary: DictionaryConfig{
			Capacity: dict.DefaultCapacity,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load reads path over the defaults. The format is chosen by extension: .yaml/.yml or .toml.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// ApplyEnv loads envFile (ignored when missing) and then applies CSVKIT_* variables on top of c.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv("CSVKIT_DELIMITER"); ok {
		c.Parser.Delimiter = v
	}
	if v, ok := os.LookupEnv("CSVKIT_QUOTE"); ok {
		c.Parser.Quote = v
	}
	if err := envBool("CSVKIT_QUOTED_FIELDS", &c.Parser.QuotedFields); err != nil {
		return err
	}
	if err := envBool("CSVKIT_TRIM", &c.Parser.TrimSpace); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("CSVKIT_DICT_CAPACITY"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("CSVKIT_DICT_CAPACITY: %w", err)
		}
		c.Dictionary.Capacity = n
	}
	if v, ok := os.LookupEnv("CSVKIT_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("CSVKIT_LOG_FILE"); ok {
		c.Logging.File = v
	}
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// Validate checks that the configuration can be turned into a parser, dictionary and logger.
func (c *Config) Validate() error {
	if _, err := singleByte("delimiter", c.Parser.Delimiter); err != nil {
		return err
	}
	if _, err := singleByte("quote", c.Parser.Quote); err != nil {
		return err
	}
	if c.Parser.Delimiter == c.Parser.Quote {
		return fmt.Errorf("delimiter and quote must differ, both are %q", c.Parser.Delimiter)
	}
	if c.Dictionary.Capacity < 1 {
		return fmt.Errorf("dictionary capacity must be positive, got %d", c.Dictionary.Capacity)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ParserConfig converts the parser section into a csvkit.Config. Call Validate first.
func (c *Config) ParserConfig() csvkit.Config {
	delim, _ := singleByte("delimiter", c.Parser.Delimiter)
	quote, _ := singleByte("quote", c.Parser.Quote)
	return csvkit.Config{
		Delimiter:    delim,
		Quote:        quote,
		QuotedFields: c.Parser.QuotedFields,
		TrimSpace:    c.Parser.TrimSpace,
	}
}

// LoggingOptions converts the logging section for logging.New.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		File:       c.Logging.File,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
	}
}

// singleByte accepts exactly one byte, with `\t` as an escape for tab.
func singleByte(name, s string) (byte, error) {
	if s == `\t` {
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("%s must be a single byte, got %q", name, s)
	}
	return s[0], nil
}
