// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"errors"
	"time"
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ErrSecretKeyMissing is returned by LoadConfig when no signing secret was
// provided by any configuration layer. Starting without one would mean
// signing tokens with an empty key, so startup must abort instead.
var ErrSecretKeyMissing = errors.New("SECRET_KEY is not set: refusing to start without a token signing secret")

// Config holds runtime settings for the TaskKeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - Env: "development" or "production". Production binds all interfaces
//     by default; development stays on loopback.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
type Config struct {
	EndpointAddr          string
	Env                   string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The secret key has
// no default on purpose; it must come from the environment, JSON file, or flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = "127.0.0.1:3000"
	c.Env = EnvDevelopment
	c.SecretKey = ""
	c.TokenValidityDuration = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. It returns an error if no signing secret was configured.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)

	if cfg.SecretKey == "" {
		return nil, ErrSecretKeyMissing
	}
	return cfg, nil
}
