// Package config loads the application configuration: listen address and
// the issuing company's branding used on every rendered document.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/render"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig    `yaml:"server"`
	Company render.Branding `yaml:"company"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8090"},
		Company: render.Branding{
			CompanyName: "Smart Universe for Communications & IT",
			Address:     "Riyadh, Saudi Arabia",
			Email:       "info@smartuniit.com",
		},
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = Default().Server.Addr
	}
	return cfg, nil
}
