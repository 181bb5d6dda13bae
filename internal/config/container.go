package config

import (
	"pdf-word-converter/internal/domain"
	"pdf-word-converter/internal/repository"
	"pdf-word-converter/internal/service"
	"pdf-word-converter/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Storage           *repository.LocalStorage
	Extractor         domain.TextExtractor
	ConversionService *service.ConversionService
}

// NewContainer creates a new dependency injection container.
// The extractor capability probe runs exactly once, here, so the rest of
// the process never consults global state to pick an implementation.
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	storage := repository.NewLocalStorage(
		cfg.GetStoragePath(),
		cfg.GetPublicBaseURL(),
		cfg.GetFileRetention(),
		appLogger,
	)

	extractor := service.SelectExtractor(cfg.GetExtractor(), appLogger)

	conversionService := service.NewConversionService(extractor, storage, appLogger)

	return &Container{
		Config:            cfg,
		Logger:            appLogger,
		Storage:           storage,
		Extractor:         extractor,
		ConversionService: conversionService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
