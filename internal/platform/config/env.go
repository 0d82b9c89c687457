package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every environment variable read by odds commands.
const Prefix = "ODDS_"

// ParseEnv loads configuration from ODDS_-prefixed environment variables.
// Struct tags name the variable without the prefix.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: Prefix})
}

// ParseEnvFrom loads configuration from the given variables instead of the
// process environment. Keys carry the ODDS_ prefix.
func ParseEnvFrom(target any, environment map[string]string) error {
	return parse(target, env.Options{Prefix: Prefix, Environment: environment})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
