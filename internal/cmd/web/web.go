// Package web parses web command flags and launches the landing service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"

	entrypoint "github.com/radchenko/landing/internal/platform/cmd"
	"github.com/radchenko/landing/internal/platform/logging"
	"github.com/radchenko/landing/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"LANDING_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	StaticDir    string `env:"LANDING_WEB_STATIC_DIR"`
	LogLevel     string `env:"LANDING_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"LANDING_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"LANDING_OTEL_ENABLED" envDefault:"false"`
}

// ParseConfig parses the process environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

// ParseConfigWithEnv parses environ and flags into a Config.
func ParseConfigWithEnv(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

func bindFlags(fs *flag.FlagSet, args []string, cfg Config) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag set is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Static asset root; /images/ is served from its images subdirectory (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.TelemetryOptions{
		Endpoint: cfg.OTelEndpoint,
		Enabled:  cfg.OTelEnabled,
		Logger:   logger,
	}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:  cfg.HTTPAddr,
			StaticDir: cfg.StaticDir,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
