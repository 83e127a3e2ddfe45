package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if VITAL_CONFIG is set
//  3. env (prefix VITAL_), including values from a local .env file
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future loaders (e.g. remote config)

	// A local .env is a developer convenience; ignore if absent.
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("VITAL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: VITAL_ADDR, VITAL_REQUEST_DELAY_MS, ...
	// Map env keys like VITAL_OUTPUT_DIR -> output_dir (flat keys).
	envProvider := env.Provider("VITAL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "vital_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, errors.New("addr must not be empty")
	case cfg.HTTPTimeoutSeconds <= 0:
		return nil, errors.New("http_timeout_seconds must be positive")
	case cfg.RequestDelayMS < 0:
		return nil, errors.New("request_delay_ms must not be negative")
	}
	return &cfg, nil
}
