package app

import (
	"log/slog"

	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config    *config.RuntimeConfig
	Toolchain *config.ToolchainConfig

	Logger *slog.Logger

	// Use cases
	ShowConfig     *usecase.ShowConfig
	ListNetworks   *usecase.ListNetworks
	ExportConfig   *usecase.ExportConfig
	ValidateConfig *usecase.ValidateConfig
	InitEnv        *usecase.InitEnv

	// Adapters
	Encoders usecase.EncoderRegistry
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	toolchain *config.ToolchainConfig,
	logger *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	exportConfig *usecase.ExportConfig,
	validateConfig *usecase.ValidateConfig,
	initEnv *usecase.InitEnv,
	encoders usecase.EncoderRegistry,
) (*App, error) {
	return &App{
		Config:         cfg,
		Toolchain:      toolchain,
		Logger:         logger,
		ShowConfig:     showConfig,
		ListNetworks:   listNetworks,
		ExportConfig:   exportConfig,
		ValidateConfig: validateConfig,
		InitEnv:        initEnv,
		Encoders:       encoders,
	}, nil
}
