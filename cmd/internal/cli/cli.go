// Package cli holds the bootstrap shared by the step programs: logger
// setup, connection settings, and service construction with api-key or
// Entra ID authentication.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/stepwise-ai/semkernel/core/config"
	"github.com/stepwise-ai/semkernel/service"
)

// InitLogger installs a text slog handler on stderr as the default
// logger. Verbosity comes from SEMKERNEL_LOG_LEVEL (debug, info, warn,
// error); unset means warn so demo output stays readable.
func InitLogger() {
	level := slog.LevelWarn
	switch os.Getenv("SEMKERNEL_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// Options builds the service options matching the settings: none when
// an API key is configured, otherwise a DefaultAzureCredential for
// Entra ID bearer authentication.
func Options(cfg *config.Settings) ([]service.Option, error) {
	if cfg.APIKey != "" {
		return nil, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("no API key set and default credential unavailable: %w", err)
	}
	return []service.Option{service.WithTokenCredential(cred)}, nil
}

// Setup loads settings and creates an authenticated chat service.
func Setup() (*config.Settings, *service.ChatService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	opts, err := Options(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, service.NewChatService(cfg, opts...), nil
}
