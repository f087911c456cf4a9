// Package config loads exsite settings from YAML or TOML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the CLI.
type Config struct {
	Extract   ExtractConfig   `yaml:"extract" toml:"extract"`
	Directory DirectoryConfig `yaml:"directory" toml:"directory"`
	Log       LogConfig       `yaml:"log" toml:"log"`
}

// ExtractConfig holds spreadsheet extraction settings.
type ExtractConfig struct {
	MinIdentifierLength int      `yaml:"min_identifier_length" toml:"min_identifier_length" validate:"min=1"`
	ExcludeKeywords     []string `yaml:"exclude_keywords" toml:"exclude_keywords"`
	TemplateSheet       string   `yaml:"template_sheet" toml:"template_sheet" validate:"required"`
	StartMarker         string   `yaml:"start_marker" toml:"start_marker"`
	Group               string   `yaml:"group" toml:"group"`
}

// DirectoryConfig holds remote directory settings. The token is never read
// from a file.
type DirectoryConfig struct {
	BaseURL          string  `yaml:"base_url" toml:"base_url" validate:"required,url"`
	OrgID            string  `yaml:"org_id" toml:"org_id"`
	Token            string  `yaml:"-" toml:"-"`
	PageSize         int     `yaml:"page_size" toml:"page_size" validate:"min=1,max=1000"`
	MaxAttempts      int     `yaml:"max_attempts" toml:"max_attempts" validate:"min=1,max=20"`
	RetryBaseSeconds float64 `yaml:"retry_base_seconds" toml:"retry_base_seconds" validate:"gt=0"`
	TimeoutSeconds   int     `yaml:"timeout_seconds" toml:"timeout_seconds" validate:"min=1"`
}

// RetryBase returns the first backoff delay.
func (c DirectoryConfig) RetryBase() time.Duration {
	return time.Duration(c.RetryBaseSeconds * float64(time.Second))
}

// Timeout returns the per-attempt timeout.
func (c DirectoryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			MinIdentifierLength: 4,
			ExcludeKeywords:     []string{"template", "variables", "config"},
			TemplateSheet:       "Site Variables",
			Group:               "Default_Group",
		},
		Directory: DirectoryConfig{
			BaseURL:          "https://api.mist.com/api/v1",
			PageSize:         100,
			MaxAttempts:      5,
			RetryBaseSeconds: 1.5,
			TimeoutSeconds:   60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration file at path. The format follows the file
// extension. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.setDefaults()
	return cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// A .env file in the working directory is read first when present.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("MIST_API_TOKEN"); v != "" {
		cfg.Directory.Token = v
	}
	if v := os.Getenv("MIST_ORG_ID"); v != "" {
		cfg.Directory.OrgID = v
	}
	if v := os.Getenv("MIST_BASE_URL"); v != "" {
		cfg.Directory.BaseURL = v
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// setDefaults fills zero values left by an explicit empty setting.
func (c *Config) setDefaults() {
	def := Default()
	if c.Extract.MinIdentifierLength == 0 {
		c.Extract.MinIdentifierLength = def.Extract.MinIdentifierLength
	}
	if c.Extract.ExcludeKeywords == nil {
		c.Extract.ExcludeKeywords = def.Extract.ExcludeKeywords
	}
	if c.Extract.TemplateSheet == "" {
		c.Extract.TemplateSheet = def.Extract.TemplateSheet
	}
	if c.Directory.BaseURL == "" {
		c.Directory.BaseURL = def.Directory.BaseURL
	}
	if c.Directory.PageSize == 0 {
		c.Directory.PageSize = def.Directory.PageSize
	}
	if c.Directory.MaxAttempts == 0 {
		c.Directory.MaxAttempts = def.Directory.MaxAttempts
	}
	if c.Directory.RetryBaseSeconds == 0 {
		c.Directory.RetryBaseSeconds = def.Directory.RetryBaseSeconds
	}
	if c.Directory.TimeoutSeconds == 0 {
		c.Directory.TimeoutSeconds = def.Directory.TimeoutSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}
