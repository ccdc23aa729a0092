package config

import "os"

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	SECRET_KEY  token signing secret (required overall, see LoadConfig)
//	APP_ENV     "production" switches the default bind to all interfaces
//	ADDRESS     explicit bind address, wins over the APP_ENV default
func parseEnv(config *Config) {
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Env = env
		if env == EnvProduction {
			config.EndpointAddr = "0.0.0.0:3000"
		}
	}
	if addr := os.Getenv("ADDRESS"); addr != "" {
		config.EndpointAddr = addr
	}
	if key := os.Getenv("SECRET_KEY"); key != "" {
		config.SecretKey = key
	}
}
