// Package main provides the entry point for tms-server.
//
// tms-server is the API process for the task management system,
// serving account registration, login and owner-scoped task CRUD
// over HTTP.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Nenzy16/task-management-system/internal/core/service"
	"github.com/Nenzy16/task-management-system/internal/infra/buildinfo"
	"github.com/Nenzy16/task-management-system/internal/infra/confloader"
	"github.com/Nenzy16/task-management-system/internal/infra/shutdown"
	"github.com/Nenzy16/task-management-system/internal/server/config"
	"github.com/Nenzy16/task-management-system/internal/server/httpserver"
	"github.com/Nenzy16/task-management-system/internal/storage/memory"
	"github.com/Nenzy16/task-management-system/internal/telemetry/logger"
	"github.com/Nenzy16/task-management-system/internal/telemetry/metric"
)

func main() {
	app := &cli.App{
		Name:    "tms-server",
		Usage:   "Task management API server",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"TMS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address, overrides configuration",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting tms-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", c.String("config"))

	safeCfg := config.Sanitize(cfg)
	log.Debug("effective configuration",
		"addr", safeCfg.Server.HTTP.Addr,
		"token_ttl", safeCfg.Auth.TokenTTL,
		"token_secret", safeCfg.Auth.TokenSecret,
		"log_level", safeCfg.Log.Level)

	// An operator-provided secret keeps tokens valid across restarts.
	// Without one, a random secret is minted for this process.
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 {
		secret = randomSecret()
		log.Warn("no token secret configured, generated a random one; " +
			"all tokens become invalid on restart")
	}

	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()

	credentialSvc, err := service.NewCredentialService(userStore)
	if err != nil {
		return fmt.Errorf("init credential service: %w", err)
	}

	tokenSvc, err := service.NewTokenService(&service.TokenServiceConfig{
		Secret: secret,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("init token service: %w", err)
	}

	taskSvc := service.NewTaskService(taskStore)

	metrics := metric.NewRegistry(
		func() float64 { return float64(userStore.Count()) },
		func() float64 { return float64(taskStore.Count()) },
	)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Credentials:        credentialSvc,
		Tokens:             tokenSvc,
		Tasks:              taskSvc,
		Logger:             log,
		Metrics:            metrics,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Live reload of the log level when the config file changes.
	if configFile := c.String("config"); configFile != "" {
		watcher, err := startConfigWatcher(configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig builds the effective configuration from defaults, the
// optional config file, environment variables and CLI flag overrides,
// in that order of precedence.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile := c.String("config"); configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	overrides := map[string]any{}
	if addr := c.String("addr"); addr != "" {
		overrides["server.http.addr"] = addr
	}
	if level := c.String("log-level"); level != "" {
		overrides["log.level"] = level
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger builds the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// startConfigWatcher re-reads the config file on change and applies the
// log level. Other settings require a restart.
func startConfigWatcher(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		reloaded := config.Default()
		loader := confloader.NewLoader(confloader.WithConfigFile(configFile))
		if err := loader.Load(reloaded); err != nil {
			log.Error("config reload failed", "error", err)
			return
		}
		if err := config.Verify(reloaded); err != nil {
			log.Error("config reload rejected", "error", err)
			return
		}

		if reloaded.Log.Level != logger.GetLevel() {
			logger.SetLevel(reloaded.Log.Level)
			log.Info("log level changed", "level", reloaded.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}

// randomSecret mints a 32-byte hex-encoded signing key.
func randomSecret() []byte {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return []byte(hex.EncodeToString(buf))
}
