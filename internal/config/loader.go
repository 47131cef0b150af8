package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if INSIGHT_CONFIG is set
//  3. env (prefix INSIGHT_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("INSIGHT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, wrapError("load file", err)
		}
	}

	// Environment variables: INSIGHT_ADDR, INSIGHT_CATALOG_API_KEY, ...
	// Map env keys like INSIGHT_CATALOG_API_KEY -> catalog_api_key.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("INSIGHT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "insight_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, wrapError("load env", err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrapError("unmarshal", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return ErrEmptyAddr
	}
	if c.CatalogPageSize <= 0 {
		return ErrInvalidPageSize
	}
	if c.CatalogMaxItems <= 0 {
		return ErrInvalidMaxItems
	}
	return nil
}
