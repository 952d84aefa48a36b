// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for tms-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Auth   AuthSection   `koanf:"auth"`
	CORS   CORSSection   `koanf:"cors"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr string `koanf:"addr"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// AuthSection configures token issuance.
type AuthSection struct {
	// TokenSecret is the HMAC signing key for session tokens.
	// If empty, a random secret is generated at startup, which
	// invalidates all tokens on restart.
	TokenSecret string `koanf:"token_secret"`

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// CORSSection configures cross-origin access.
type CORSSection struct {
	// AllowedOrigins lists origins allowed to call the API.
	// A single "*" allows any origin.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
