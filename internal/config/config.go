package config

import (
	"github.com/caarlos0/env/v11"

	"agency-desk/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). In dev the demo
	// seed and the console mailer are the expected setup.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures token signing and the bootstrap admin account.
	Auth configs.Auth `envPrefix:"AUTH_"`

	Mail configs.Mail `envPrefix:"MAIL_"`

	// Storage selects where uploaded report files go.
	Storage configs.Storage `envPrefix:"STORAGE_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}
