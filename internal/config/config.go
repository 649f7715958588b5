package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/letung3105/fnl/internal/fnl"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "FNL_CONFIG"

// Config holds the settings of the fnl command line tool
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Repl   ReplConfig   `toml:"repl" yaml:"repl"`
	Watch  WatchConfig  `toml:"watch" yaml:"watch"`
}

// OutputConfig controls how modules and tokens are printed
type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
	NoColor    bool   `toml:"no_color" yaml:"no_color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// ReplConfig holds settings of the interactive prompt
type ReplConfig struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	ContinuePrompt string `toml:"continue_prompt" yaml:"continue_prompt"`
	HistoryFile    string `toml:"history_file" yaml:"history_file"`
}

// WatchConfig holds settings of `parse --watch`
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration so it can be written as "100ms" in both file
// formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Format is the encoding of a config file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// DefaultDebounce is used when the config does not set watch.debounce. An
// explicit "0s" turns debouncing off.
const DefaultDebounce = 100 * time.Millisecond

// Default returns a configuration with every field set to its default
func Default() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	cfg.expandPaths()
	return cfg
}

// Load loads configuration from a TOML or YAML file, picked by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FNL_CONFIG, then the default locations,
// and falls back to Default when none exists
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	defaultPaths := []string{"./fnl.toml", "./fnl.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config/fnl/config.toml"))
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Parse decodes content in the given format, fills defaults and validates the
// result
func Parse(content []byte, format Format) (*Config, error) {
	cfg := newConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.applyDefaults()
	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newConfig holds the defaults that have a meaningful zero value. Decoding
// leaves absent keys untouched, so they keep these values.
func newConfig() *Config {
	return &Config{
		Watch: WatchConfig{Debounce: Duration{DefaultDebounce}},
	}
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if _, err := fnl.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// LogLevel parses Log.Level into a slog level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// applyDefaults sets default values for empty settings
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = string(fnl.FormatSExpr)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "fnl> "
	}
	if c.Repl.ContinuePrompt == "" {
		c.Repl.ContinuePrompt = "...> "
	}
	if c.Repl.HistoryFile == "" {
		c.Repl.HistoryFile = "~/.fnl_history"
	}
}

// expandPaths expands environment variables and a leading "~" in file paths
func (c *Config) expandPaths() {
	c.Repl.HistoryFile = expandHome(os.ExpandEnv(c.Repl.HistoryFile))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
