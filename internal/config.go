package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/starford/dagaz/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Catalog CatalogConfig     `yaml:"catalog"`
	Output  OutputConfig      `yaml:"output"`
	Compile CompileConfig     `yaml:"compile"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Compile.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// CatalogConfig holds the path to the capsule catalog directory.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// OutputConfig holds the path generated projects are written under.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// CompileConfig holds compilation settings.
//
// Platforms narrows which targets are compiled; when empty, each
// composition's own target list decides.
type CompileConfig struct {
	Platforms []string      `yaml:"platforms"`
	Timeout   time.Duration `yaml:"timeout"`
	Debounce  time.Duration `yaml:"debounce"`
}

// UnmarshalYAML decodes durations in time.ParseDuration form ("30s",
// "250ms"), which yaml.v3 cannot produce for time.Duration fields on
// its own. Absent duration fields keep whatever value is already set,
// so file values layer over defaults.
func (c *CompileConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Platforms []string `yaml:"platforms"`
		Timeout   string   `yaml:"timeout"`
		Debounce  string   `yaml:"debounce"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Platforms != nil {
		c.Platforms = raw.Platforms
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("compile: bad timeout: %w", err)
		}
		c.Timeout = d
	}
	if raw.Debounce != "" {
		d, err := time.ParseDuration(raw.Debounce)
		if err != nil {
			return fmt.Errorf("compile: bad debounce: %w", err)
		}
		c.Debounce = d
	}
	return nil
}

// Validate validates the compile configuration.
func (c *CompileConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Platforms, validation.Each(validation.In(
			string(models.PlatformWeb),
			string(models.PlatformIOS),
			string(models.PlatformAndroid),
		))),
	); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("compile: timeout must not be negative, got %s", c.Timeout)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("compile: debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}

// TargetPlatforms returns the configured platform filter as typed platforms.
func (c *CompileConfig) TargetPlatforms() []models.Platform {
	out := make([]models.Platform, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		out = append(out, models.Platform(p))
	}
	return out
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Catalog: CatalogConfig{
			Path: "./catalog",
		},
		Output: OutputConfig{
			Path: "./dist",
		},
		Compile: CompileConfig{
			Timeout:  30 * time.Second,
			Debounce: 300 * time.Millisecond,
		},
	}
}
