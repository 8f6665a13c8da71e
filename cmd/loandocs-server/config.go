package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration file shape.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	Redis struct {
		Addr      string `yaml:"addr"`
		Namespace string `yaml:"namespace"`
		TTL       string `yaml:"ttl"`
	} `yaml:"redis"`

	ESign struct {
		Secret string `yaml:"secret"`
		Issuer string `yaml:"issuer"`
		Expiry string `yaml:"expiry"`
	} `yaml:"esign"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads a YAML config file. A missing path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Port <= 0 {
		return cfg, fmt.Errorf("config %q: port must be positive", path)
	}
	return cfg, nil
}

// DefaultConfig returns a config suitable for local development: in-memory
// session store, development signing secret, port 8080.
func DefaultConfig() Config {
	cfg := Config{
		Host: "0.0.0.0",
		Port: 8080,
	}
	cfg.Redis.Namespace = "loandocs"
	cfg.ESign.Issuer = "loandocs"
	cfg.Logging.Level = "info"
	return cfg
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
