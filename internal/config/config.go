package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

func (cfg *Demo) AdjustConfig() {
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.Format == "" {
		cfg.Logs.Format = LogFormatConsole
	}
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
}

// LoadConfig reads a YAML demo config. An empty path yields Default().
func LoadConfig(path string) (*Demo, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Demo
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Demo{}
	}
	cfg.AdjustConfig()

	return cfg, nil
}
