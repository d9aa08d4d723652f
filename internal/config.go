package internal

import (
	"airdrop-recipients/errors"
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// DefaultSigscoreURL is the miners endpoint. Page size is part of the URL.
const DefaultSigscoreURL = "http://5.78.102.130:8000/sigscore/miners?pageSize=5000"

var validate = validator.New()

type Config struct {
	SigscoreURL  string        `env:"SIGSCORE_URL" validate:"required,url"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT,default=0s" validate:"min=0"`
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES,default=33554432" validate:"gt=0"`
	LogLevel     string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// DefaultConfig mirrors the env defaults for callers that don't read the environment.
func DefaultConfig() Config {
	return Config{
		SigscoreURL:  DefaultSigscoreURL,
		MaxBodyBytes: 32 << 20,
		LogLevel:     "INFO",
	}
}

// LoadConfig reads the environment, fills the endpoint default and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if cfg.SigscoreURL == "" {
		cfg.SigscoreURL = DefaultSigscoreURL
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}
