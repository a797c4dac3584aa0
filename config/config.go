package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the YAML pipeline file read by quatconv.
type Config struct {
	Pipeline Pipeline `yaml:"pipeline"`

	// Targets inside glTF documents. Both default to true.
	Nodes      *bool `yaml:"nodes"`
	Animations *bool `yaml:"animations"`

	Bake    bool          `yaml:"bake"`
	FPS     float32       `yaml:"fps"`
	Preview PreviewConfig `yaml:"preview"`
}

type PreviewConfig struct {
	Output string `yaml:"output"`
	Size   int    `yaml:"size"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Normalize bool
	Conjugate bool
	Bake      bool
	Preview   string
	Size      int
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Pipeline.Compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve applies flags on top of the file values and fills in defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Conjugate {
		c.Pipeline = append(c.Pipeline, Step{Op: OpConjugate})
	}
	if flags.Normalize {
		c.Pipeline = append(c.Pipeline, Step{Op: OpNormalize})
	}
	if flags.Bake {
		c.Bake = true
	}
	if flags.Preview != "" {
		c.Preview.Output = flags.Preview
	}
	if flags.Size > 0 {
		c.Preview.Size = flags.Size
	}

	if c.Nodes == nil {
		c.Nodes = boolPtr(true)
	}
	if c.Animations == nil {
		c.Animations = boolPtr(true)
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Preview.Size <= 0 {
		c.Preview.Size = 256
	}
}

func boolPtr(v bool) *bool { return &v }
