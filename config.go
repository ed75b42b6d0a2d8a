package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/bazaar-shop/bazaar/client/auth"
)

// EnvPrefix prefixes every environment variable LoadConfig reads.
// Example: BAZAAR_API_BASE_URL, BAZAAR_TOKEN_BACKEND
const EnvPrefix = "BAZAAR"

// Token backends accepted in Config.TokenBackend.
const (
	TokenBackendFile   = "file"
	TokenBackendRedis  = "redis"
	TokenBackendMemory = "memory"
)

// Config holds everything needed to build a Client and its token store.
//
// Values are layered: DefaultConfig, then an optional YAML file, then
// BAZAAR_* environment variables.
type Config struct {
	BaseURL     string        `envconfig:"API_BASE_URL" yaml:"api_base_url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" yaml:"http_timeout"`

	// Sends the ngrok browser-warning bypass header.
	RelayBypass bool `envconfig:"RELAY_BYPASS" yaml:"relay_bypass"`
	Debug       bool `envconfig:"DEBUG" yaml:"debug"`
	Tracing     bool `envconfig:"TRACING" yaml:"tracing"`

	// Token persistence
	TokenBackend string `envconfig:"TOKEN_BACKEND" yaml:"token_backend"`
	TokenFile    string `envconfig:"TOKEN_FILE" yaml:"token_file"`
	RedisURL     string `envconfig:"REDIS_URL" yaml:"redis_url"`
	TokenKey     string `envconfig:"TOKEN_KEY" yaml:"token_key"`
}

// DefaultConfig returns the built-in defaults. BaseURL has none.
func DefaultConfig() *Config {
	return &Config{
		HTTPTimeout:  30 * time.Second,
		RelayBypass:  true,
		TokenBackend: TokenBackendFile,
		TokenFile:    "~/.bazaar/token",
		RedisURL:     "redis://localhost:6379/0",
		TokenKey:     auth.DefaultTokenKey,
	}
}

// LoadConfig reads the defaults overridden by BAZAAR_* environment variables.
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile reads the YAML file at path (skipped when path is ""), then
// applies environment overrides and validates the result.
func LoadConfigFile(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig layers defaults, the YAML file at path (skipped when path is "")
// and environment overrides without validating, so callers can apply their
// own overrides before Validate.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// No default tags: envconfig would otherwise overwrite file values.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("api_base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("relay_bypass", cfg.RelayBypass).
		Str("token_backend", cfg.TokenBackend).
		Msg("Configuration loaded")

	return cfg, nil
}

// Validate checks required fields and the token backend name.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("api base url is required (set BAZAAR_API_BASE_URL)")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0, got %s", c.HTTPTimeout)
	}
	switch c.TokenBackend {
	case TokenBackendFile:
		if c.TokenFile == "" {
			return errors.New("token file is required for the file token backend")
		}
	case TokenBackendRedis:
		if c.RedisURL == "" {
			return errors.New("redis url is required for the redis token backend")
		}
	case TokenBackendMemory:
	default:
		return fmt.Errorf("unsupported TOKEN_BACKEND: %s", c.TokenBackend)
	}
	return nil
}

// Options converts the config into client options.
func (c *Config) Options() []Option {
	return []Option{
		WithHTTPTimeout(c.HTTPTimeout),
		WithRelayBypass(c.RelayBypass),
		WithDebugLogging(c.Debug),
		WithTracing(c.Tracing),
	}
}

// NewFromConfig builds a Client from cfg. opts run after the config-derived
// options and so take precedence.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}

// OpenTokenStore returns the token store selected by TokenBackend and a
// close func releasing whatever it holds open.
func (c *Config) OpenTokenStore() (auth.TokenStore, func() error, error) {
	noop := func() error { return nil }
	switch c.TokenBackend {
	case TokenBackendMemory:
		return auth.NewMemoryTokenStore(""), noop, nil
	case TokenBackendRedis:
		store, rc, err := auth.NewRedisTokenStoreFromURL(c.RedisURL, c.TokenKey)
		if err != nil {
			return nil, nil, err
		}
		return store, rc.Close, nil
	case TokenBackendFile, "":
		store, err := auth.NewFileTokenStore(c.TokenFile)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported TOKEN_BACKEND: %s", c.TokenBackend)
	}
}
