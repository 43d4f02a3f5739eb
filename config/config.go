package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// Generator groups everything needed to reproduce a sequence: where it starts,
// how many values to draw, and how to report progress.
type Generator struct {
	Seed Seed `yaml:"seed"`

	// Count is the number of values to draw. Values below one are raised to one.
	Count int `yaml:"count"`

	Logs LogsCfg `yaml:"logs"`
}

func (cfg *Generator) AdjustConfig() {
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.Format == "" {
		cfg.Logs.Format = LogsFormatConsole
	}
}

func LoadConfig(path string) (*Generator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Generator
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Generator{}
	}
	cfg.AdjustConfig()

	if err = cfg.Seed.Validate(); err != nil {
		return nil, fmt.Errorf("validate seed from %s: %w", path, err)
	}

	return cfg, nil
}
