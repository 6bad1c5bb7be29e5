// Package config loads service configuration from defaults, an optional
// JSON file and STOREFRONT_* environment overrides, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides. A double underscore in the
// variable name separates nesting levels: STOREFRONT_CATALOG__SOURCE sets
// catalog.source.
const envPrefix = "STOREFRONT_"

// Config is the root configuration.
type Config struct {
	Addr string `koanf:"addr" validate:"required"`
	// AssetRoot is the directory product images are served from; it is the
	// one production-vs-development switch the service carries.
	AssetRoot string `koanf:"asset_root"`

	Catalog  CatalogConfig  `koanf:"catalog"`
	Auth     AuthConfig     `koanf:"auth"`
	Database DatabaseConfig `koanf:"database"`
	Flags    FlagsConfig    `koanf:"flags"`
}

// CatalogConfig selects and tunes the product data source.
type CatalogConfig struct {
	// Source is the provider backing: the in-memory fixture or postgres.
	Source string `koanf:"source" validate:"oneof=memory postgres"`
	// LatencyMS is the artificial delay the memory source applies per
	// operation. Tests run it at zero.
	LatencyMS int `koanf:"latency_ms" validate:"min=0"`
}

// Latency returns the configured artificial delay.
func (c CatalogConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// AuthConfig tunes the mocked auth flow.
type AuthConfig struct {
	JWTSecret    string `koanf:"jwt_secret" validate:"required"`
	LoginDelayMS int    `koanf:"login_delay_ms" validate:"min=0"`
}

// LoginDelay returns the artificial delay of the mocked login.
func (c AuthConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// DatabaseConfig carries the DSN for the postgres source.
type DatabaseConfig struct {
	DSN string `koanf:"dsn"`
}

// FlagsConfig carries the Rollout API key; empty means flag defaults only.
type FlagsConfig struct {
	Key string `koanf:"key"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"addr":                ":8080",
		"asset_root":          "static",
		"catalog.source":      "memory",
		"catalog.latency_ms":  0,
		"auth.jwt_secret":     "dev-secret-change-me",
		"auth.login_delay_ms": 0,
		"database.dsn":        "",
		"flags.key":           "",
	}
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment overrides apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Catalog.Source == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("invalid config: catalog.source is postgres but database.dsn is empty")
	}
	return nil
}
