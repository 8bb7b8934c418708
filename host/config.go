package host

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds executor settings loaded from the environment.
type Config struct {
	// ModuleName is the name extensions import host functions from.
	ModuleName string `env:"RECORD_BRIDGE_HOST_MODULE" envDefault:"bridge_host"`

	// MaxRequestSize bounds request payloads read from guest memory.
	MaxRequestSize uint32 `env:"RECORD_BRIDGE_MAX_REQUEST_SIZE" envDefault:"1048576"`

	// LogLevel selects the minimum level for host-side logging.
	LogLevel string `env:"RECORD_BRIDGE_LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig returns the built-in executor settings without consulting
// the environment.
func DefaultConfig() Config {
	return Config{
		ModuleName:     "bridge_host",
		MaxRequestSize: 1048576,
		LogLevel:       "info",
	}
}

// ConfigFromEnv loads executor settings from environment variables,
// falling back to the defaults for unset variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
