package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Results struct {
		// Backend selects where the history lives: "file" (default),
		// "redis", "postgres", or "memory".
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"results"`
	Quiz struct {
		BankID string `yaml:"bankId"`
		TTL    string `yaml:"ttl"`
	} `yaml:"quiz"`
	Assets struct {
		DiagramPath string `yaml:"diagramPath"`
		RetryDelay  string `yaml:"retryDelay"`
	} `yaml:"assets"`
}

// Load reads YAML config from path. A missing file yields the zero config;
// every consumer has a sensible default.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty or
// malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
