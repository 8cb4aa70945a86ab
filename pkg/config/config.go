package config

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/one-answer/MeetSpot/pkg/global"
)

// Config is the project release configuration, loaded from release.yaml at
// the project root. Every field is optional; defaults reproduce the plain
// "build and push aolifu/meetspot" behavior.
type Config struct {
	Repository string            `json:"repository,omitempty" yaml:"repository,omitempty"`
	Dockerfile string            `json:"dockerfile,omitempty" yaml:"dockerfile,omitempty"`
	Platform   string            `json:"platform,omitempty" yaml:"platform,omitempty"`
	BuildArgs  map[string]string `json:"build_args,omitempty" yaml:"build_args,omitempty"`
	Labels     map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// DefaultConfig returns the configuration used when no release.yaml exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// FromYAML loads a config from YAML contents.
func FromYAML(contents []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.UnmarshalStrict(contents, config); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", global.ConfigFilename, err)
	}
	return config, nil
}

// ValidateAndComplete fills in defaults and checks the loaded values.
func (c *Config) ValidateAndComplete() error {
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Repository == "" {
		c.Repository = global.DefaultRepository
	}
	if c.Dockerfile == "" {
		c.Dockerfile = global.DefaultDockerfile
	}
}
