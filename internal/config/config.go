package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.1
	DefaultDuration = 10.0
	DefaultModel    = "bouncing_ball"
)

type Config struct {
	Model    string             `yaml:"model"`
	Dt       float64            `yaml:"dt"`
	Duration float64            `yaml:"duration"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Params:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
