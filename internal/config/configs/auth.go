package configs

import (
	"errors"
	"time"
)

// Auth configures JWT issuing and the admin account created on first start.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	Issuer    string        `env:"ISSUER" envDefault:"agency-desk"`

	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func (c Auth) Validate() error {
	if len(c.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 characters")
	}
	if c.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	return nil
}
