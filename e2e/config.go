package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SIGSCORE_URL points at a live miners endpoint, the suite is skipped when empty
	SigscoreURL string `envconfig:"E2E_SIGSCORE_URL"`
	// E2E_MIN_HASHRATE is the threshold exercised against the live payload
	MinHashrate float64 `envconfig:"E2E_MIN_HASHRATE" default:"0"`
	// E2E_DEBUG_JSON dumps the built recipients as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
