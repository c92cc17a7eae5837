package config

import (
	"fmt"
	"os"

	"github.com/dyluth/tock/pkg/timesheet"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "tock.yml"

// IngestConfig selects the ingestion policies
type IngestConfig struct {
	IDPolicy     string `yaml:"id_policy,omitempty"`     // "strict" (default) or "permissive"
	BatchPolicy  string `yaml:"batch_policy,omitempty"`  // "atomic" (default), "lenient" or "collect"
	Key          string `yaml:"key,omitempty"`           // "id" (default) or "title"
	RangePolicy  string `yaml:"range_policy,omitempty"`  // "strict" (default) or "overnight"
	OptionalTags bool   `yaml:"optional_tags,omitempty"` // Blank tags become absent instead of invalid
}

// RedisConfig specifies where `tock push` writes catalogs
type RedisConfig struct {
	Addr      string `yaml:"addr,omitempty"`
	Password  string `yaml:"password,omitempty"`
	DB        int    `yaml:"db,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Config represents the top-level tock.yml configuration
type Config struct {
	Version  string       `yaml:"version"`
	Ingest   IngestConfig `yaml:"ingest"`
	Redis    RedisConfig  `yaml:"redis"`
	LogLevel string       `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no tock.yml exists
func Default() *Config {
	c := &Config{Version: "1.0"}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Ingest.IDPolicy == "" {
		c.Ingest.IDPolicy = "strict"
	}
	if c.Ingest.BatchPolicy == "" {
		c.Ingest.BatchPolicy = "atomic"
	}
	if c.Ingest.Key == "" {
		c.Ingest.Key = "id"
	}
	if c.Ingest.RangePolicy == "" {
		c.Ingest.RangePolicy = "strict"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.Namespace == "" {
		c.Redis.Namespace = "default"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate applies defaults and performs strict validation on the configuration
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	c.applyDefaults()

	switch c.Ingest.IDPolicy {
	case "strict", "permissive":
	default:
		return fmt.Errorf("invalid ingest.id_policy: %s (must be 'strict' or 'permissive')", c.Ingest.IDPolicy)
	}

	switch c.Ingest.BatchPolicy {
	case "atomic", "lenient", "collect":
	default:
		return fmt.Errorf("invalid ingest.batch_policy: %s (must be 'atomic', 'lenient' or 'collect')", c.Ingest.BatchPolicy)
	}

	switch c.Ingest.Key {
	case "id", "title":
	default:
		return fmt.Errorf("invalid ingest.key: %s (must be 'id' or 'title')", c.Ingest.Key)
	}

	switch c.Ingest.RangePolicy {
	case "strict", "overnight":
	default:
		return fmt.Errorf("invalid ingest.range_policy: %s (must be 'strict' or 'overnight')", c.Ingest.RangePolicy)
	}

	if c.Redis.DB < 0 {
		return fmt.Errorf("redis.db must be >= 0, got %d", c.Redis.DB)
	}

	return nil
}

// RangePolicy returns the configured range admission policy
func (c *Config) RangePolicy() timesheet.RangePolicy {
	if c.Ingest.RangePolicy == "overnight" {
		return timesheet.RangeOvernight
	}
	return timesheet.RangeStrict
}

// Assembler returns a record assembler using the configured id, range and tag
// policies. Catalogs reloaded from Redis are validated with it.
func (c *Config) Assembler() *timesheet.Assembler {
	a := &timesheet.Assembler{
		IDs:          timesheet.StrictIDs{},
		Ranges:       c.RangePolicy(),
		OptionalTags: c.Ingest.OptionalTags,
	}
	if c.Ingest.IDPolicy == "permissive" {
		a.IDs = timesheet.PermissiveIDs{}
	}
	return a
}

// BuilderOptions translates the ingest section into catalog builder options
func (c *Config) BuilderOptions(logger *zap.Logger) []timesheet.Option {
	opts := []timesheet.Option{
		timesheet.WithLogger(logger),
		timesheet.WithRangePolicy(c.RangePolicy()),
	}

	if c.Ingest.IDPolicy == "permissive" {
		opts = append(opts, timesheet.WithIDPolicy(timesheet.PermissiveIDs{}))
	} else {
		opts = append(opts, timesheet.WithIDPolicy(timesheet.StrictIDs{}))
	}

	switch c.Ingest.BatchPolicy {
	case "lenient":
		opts = append(opts, timesheet.WithBatchPolicy(timesheet.BatchLenient))
	case "collect":
		opts = append(opts, timesheet.WithBatchPolicy(timesheet.BatchCollect))
	default:
		opts = append(opts, timesheet.WithBatchPolicy(timesheet.BatchAtomic))
	}

	if c.Ingest.Key == "title" {
		opts = append(opts, timesheet.WithKeyMode(timesheet.KeyByTitle))
	}

	if c.Ingest.OptionalTags {
		opts = append(opts, timesheet.WithOptionalTags())
	}

	return opts
}

// Load reads and validates tock.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path if it exists. A missing file at the default
// location yields Default(); a missing explicitly named file is an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFileName); os.IsNotExist(err) {
			return Default(), nil
		}
		path = DefaultFileName
	}
	return Load(path)
}
