package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the command reads.
const EnvPrefix = "FARKLE_"

// ParseEnv loads configuration from FARKLE_-prefixed environment variables.
// Fields without an envDefault keep their value when the variable is unset.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
