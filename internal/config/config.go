// Package config loads and validates the bot's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Recognizer kinds.
const (
	RecognizerKeyword = "keyword"
	RecognizerHTTP    = "http"
)

// Config is the full application configuration.
type Config struct {
	// Listen is the HTTP listen address for serve mode.
	Listen string `yaml:"listen"`

	Store      StoreConfig      `yaml:"store"`
	Recognizer RecognizerConfig `yaml:"recognizer"`

	// Products optionally overrides the built-in menu.
	Products []ProductConfig `yaml:"products"`
}

// StoreConfig selects and configures the conversation state backend.
type StoreConfig struct {
	Backend  string `yaml:"backend"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTL      string `yaml:"ttl"`
}

// TTLDuration parses the configured TTL; empty means no expiration.
func (s StoreConfig) TTLDuration() (time.Duration, error) {
	if s.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil {
		return 0, fmt.Errorf("store ttl %q: %w", s.TTL, domain.ErrConfiguration)
	}
	return d, nil
}

// RecognizerConfig selects and configures the intent classifier.
type RecognizerConfig struct {
	Kind     string `yaml:"kind"`
	Endpoint string `yaml:"endpoint"`
	Key      string `yaml:"key"`
}

// ProductConfig is a catalog entry override.
type ProductConfig struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

// Default returns the configuration used when no file is given: in-memory
// store, local keyword recognizer, built-in menu.
func Default() *Config {
	return &Config{
		Listen: ":3978",
		Store: StoreConfig{
			Backend: StoreMemory,
			Prefix:  "orderbot:conversation:",
		},
		Recognizer: RecognizerConfig{
			Kind: RecognizerKeyword,
		},
	}
}

// Load reads and validates the configuration file at path. Unset fields keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration names services the bot can build.
// Failures are domain.ErrConfiguration: the bot cannot handle any turn.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if c.Store.Address == "" {
			return fmt.Errorf("redis store requires an address: %w", domain.ErrConfiguration)
		}
	default:
		return fmt.Errorf("unknown store backend %q: %w", c.Store.Backend, domain.ErrConfiguration)
	}
	if _, err := c.Store.TTLDuration(); err != nil {
		return err
	}

	switch c.Recognizer.Kind {
	case RecognizerKeyword:
	case RecognizerHTTP:
		if c.Recognizer.Endpoint == "" {
			return fmt.Errorf("http recognizer requires an endpoint: %w", domain.ErrConfiguration)
		}
	default:
		return fmt.Errorf("unknown recognizer kind %q: %w", c.Recognizer.Kind, domain.ErrConfiguration)
	}

	for _, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("product entries require a name: %w", domain.ErrConfiguration)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %q has a negative price: %w", p.Name, domain.ErrConfiguration)
		}
	}
	return nil
}
