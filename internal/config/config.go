package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema version written by this build.
const SchemaVersion = "1.0.0"

// supportedSchema constrains which config schema versions this build can
// read. Minor/patch additions are compatible; a major bump is not.
const supportedSchema = "^1.0"

// Default engine settings.
const (
	// DefaultEstimateRows is the assumed item height (terminal rows) before
	// measurement.
	DefaultEstimateRows = 1.0

	// DefaultOverscanRows is the number of extra items rendered on each
	// side of the viewport.
	DefaultOverscanRows = 5

	// DefaultDemoItemCount is the synthetic dataset size for the demo.
	DefaultDemoItemCount = 100_000
)

// Common configuration errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config schema version")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// EngineConfig holds the windowing-engine defaults handed to new engines.
type EngineConfig struct {
	// DefaultEstimate is the provisional per-item size before measurement.
	DefaultEstimate float64 `yaml:"default_estimate" json:"default_estimate"`

	// OverscanRows widens the rendered window by this many items per side.
	OverscanRows int `yaml:"overscan_rows" json:"overscan_rows"`

	// OverscanPixels widens the rendered window by this many size units per
	// side. Composes with OverscanRows.
	OverscanPixels float64 `yaml:"overscan_pixels,omitempty" json:"overscan_pixels,omitempty"`

	// ScrollAlignment is the default scroll-to-index alignment:
	// auto, start, end, or center.
	ScrollAlignment string `yaml:"scroll_alignment,omitempty" json:"scroll_alignment,omitempty"`
}

// DemoConfig parameterizes the synthetic dataset used by `vport demo`.
type DemoConfig struct {
	// ItemCount is the number of generated items.
	ItemCount int `yaml:"item_count" json:"item_count"`

	// Seed makes the generated heights reproducible.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"  json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	File   string `yaml:"file,omitempty"   json:"file,omitempty"`
}

// Config is the root of the vport configuration file.
type Config struct {
	Version string        `yaml:"version"           json:"version"`
	Engine  EngineConfig  `yaml:"engine"            json:"engine"`
	Demo    DemoConfig    `yaml:"demo,omitempty"    json:"demo,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: SchemaVersion,
		Engine: EngineConfig{
			DefaultEstimate: DefaultEstimateRows,
			OverscanRows:    DefaultOverscanRows,
			ScrollAlignment: "auto",
		},
		Demo: DemoConfig{
			ItemCount: DefaultDemoItemCount,
			Seed:      1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the default config file location under the user's
// home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vport/config.yaml"
	}
	return filepath.Join(home, ".vport", "config.yaml")
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads the config at path, falling back to the defaults
// when the file does not exist. Any other failure is surfaced.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the schema version and the value ranges the engine
// depends on.
func (c *Config) Validate() error {
	if err := c.validateVersion(); err != nil {
		return err
	}

	if c.Engine.DefaultEstimate <= 0 {
		return fmt.Errorf("%w: engine.default_estimate must be > 0, got %v",
			ErrInvalidConfig, c.Engine.DefaultEstimate)
	}
	if c.Engine.OverscanRows < 0 {
		return fmt.Errorf("%w: engine.overscan_rows must be >= 0, got %d",
			ErrInvalidConfig, c.Engine.OverscanRows)
	}
	if c.Engine.OverscanPixels < 0 {
		return fmt.Errorf("%w: engine.overscan_pixels must be >= 0, got %v",
			ErrInvalidConfig, c.Engine.OverscanPixels)
	}
	switch c.Engine.ScrollAlignment {
	case "", "auto", "start", "end", "center":
	default:
		return fmt.Errorf("%w: engine.scroll_alignment must be auto, start, end or center, got %q",
			ErrInvalidConfig, c.Engine.ScrollAlignment)
	}
	if c.Demo.ItemCount < 0 {
		return fmt.Errorf("%w: demo.item_count must be >= 0, got %d",
			ErrInvalidConfig, c.Demo.ItemCount)
	}
	return nil
}

// validateVersion parses the schema version and checks it against the
// supported constraint.
func (c *Config) validateVersion() error {
	if c.Version == "" {
		return fmt.Errorf("%w: version field is required", ErrInvalidConfig)
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: cannot parse version %q: %v",
			ErrInvalidConfig, c.Version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("failed to parse schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (this build supports %s)",
			ErrUnsupportedVersion, c.Version, supportedSchema)
	}
	return nil
}
