package config

import "time"

// SessionConfig представляет конфигурацию сессий и cookie.
type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name" env:"UNOTES_SESSION_COOKIE_NAME" env-default:"unotes_session"`
	TTL          time.Duration `yaml:"ttl" env:"UNOTES_SESSION_TTL" env-default:"168h"`
	CookieSecure bool          `yaml:"cookie_secure" env:"UNOTES_SESSION_COOKIE_SECURE" env-default:"false"`
	BcryptCost   int           `yaml:"bcrypt_cost" env:"UNOTES_BCRYPT_COST" env-default:"10"`
}
