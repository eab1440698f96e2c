// Package config provides configuration loading for the life CLI.
// Values come from defaults, an optional YAML file, LIFE_* environment
// variables and key=value overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"conwaylife/internal/logging"
	"conwaylife/pkg/life"
	"gopkg.in/yaml.v3"
)

// DefaultSeed is the fixed seed that makes default runs reproducible.
const DefaultSeed int64 = 1517181883

// Config contains all settings for a simulation run.
type Config struct {
	// WorldSize is the side of the square grid.
	WorldSize int `json:"world_size" yaml:"world_size"`

	// Generations is the number of frames to render and advance.
	Generations int `json:"generations" yaml:"generations"`

	// Seed initializes the grid.
	Seed int64 `json:"seed" yaml:"seed"`

	// Workers splits each generation's advance across goroutines.
	Workers int `json:"workers" yaml:"workers"`

	// Renderer selects and tunes the output.
	Renderer RendererConfig `json:"renderer" yaml:"renderer"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Name is a registered renderer: "text", "screen", "mesh", "none", or
	// "window" in GUI builds.
	Name string `json:"name" yaml:"name"`

	// TPS caps frames per second; 0 renders as fast as possible.
	TPS int `json:"tps" yaml:"tps"`

	// Scale is the size of a cell in pixels (window) or units (mesh).
	Scale int `json:"scale" yaml:"scale"`

	// OutDir is where the mesh renderer writes its files.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the reference defaults.
func Default() *Config {
	return &Config{
		WorldSize:   50,
		Generations: 100,
		Seed:        DefaultSeed,
		Workers:     1,
		Renderer: RendererConfig{
			Name:   "text",
			TPS:    10,
			Scale:  3,
			OutDir: "mesh",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment variables.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}
	applyEnvOverrides(config)
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.WorldSize <= 0 || c.WorldSize > life.MaxLength {
		return fmt.Errorf("world_size must be between 1 and %d, got %d: %w", life.MaxLength, c.WorldSize, life.ErrInvalidDimension)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Renderer.Name == "" {
		return fmt.Errorf("renderer name must not be empty")
	}
	if c.Renderer.TPS < 0 {
		return fmt.Errorf("tps must be non-negative, got %d", c.Renderer.TPS)
	}
	if c.Renderer.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Renderer.Scale)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

// Apply sets the keys present in overrides. Unknown keys and values that do
// not parse are ignored, matching the lenient command-line overrides.
func (c *Config) Apply(overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["world_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.WorldSize = parsed
		}
	}
	if v, ok := overrides["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Generations = parsed
		}
	}
	if v, ok := overrides["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := overrides["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := overrides["renderer"]; ok && v != "" {
		c.Renderer.Name = v
	}
	if v, ok := overrides["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Renderer.TPS = parsed
		}
	}
	if v, ok := overrides["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Renderer.Scale = parsed
		}
	}
	if v, ok := overrides["out_dir"]; ok && v != "" {
		c.Renderer.OutDir = v
	}
	if v, ok := overrides["log_level"]; ok && v != "" {
		c.Logging.Level = v
	}
}

// ParseOverrides turns key=value pairs into a map for Apply.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not in key=value form", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	env := map[string]string{}
	for key, name := range envKeys {
		if v := os.Getenv(name); v != "" {
			env[key] = v
		}
	}
	config.Apply(env)
}

var envKeys = map[string]string{
	"world_size":  "LIFE_WORLD_SIZE",
	"generations": "LIFE_GENERATIONS",
	"seed":        "LIFE_SEED",
	"workers":     "LIFE_WORKERS",
	"renderer":    "LIFE_RENDERER",
	"tps":         "LIFE_TPS",
	"scale":       "LIFE_SCALE",
	"out_dir":     "LIFE_OUT_DIR",
	"log_level":   "LIFE_LOG_LEVEL",
}
