package main

import (
	"github.com/mingleton/dawson-rp/internal/config"
	"github.com/mingleton/dawson-rp/internal/logger"
)

// initLogger installs the default slog logger from app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.ProductionConfig()
	loggerConfig.Level = cfg.LogLevel
	if !cfg.LogJSON {
		loggerConfig.Format = "text"
	}
	logger.Setup(loggerConfig)
}
