// Package config defines the server configuration structure.
package config

import (
	"errors"
	"net"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyAuth(&cfg.Auth); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return errors.New("server.http.addr is not a valid host:port: " + err.Error())
	}
	if cfg.HTTP.ShutdownTimeout < 0 {
		return errors.New("server.http.shutdown_timeout must not be negative")
	}
	return nil
}

func verifyAuth(cfg *AuthSection) error {
	if cfg.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of: debug, info, warn, error")
	}
	switch cfg.Format {
	case "json", "text":
	default:
		return errors.New("log.format must be one of: json, text")
	}
	return nil
}
