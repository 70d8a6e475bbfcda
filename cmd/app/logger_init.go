package main

import (
	"log/slog"
	"os"

	"github.com/osse101/LiveLikeSpawns_Go/internal/bootstrap"
	"github.com/osse101/LiveLikeSpawns_Go/internal/config"
	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// When the session log file cannot be created it falls back to stdout only.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		logger.InitLogger(cfg.LoggerConfig())
		slog.Warn("Session log file disabled", "error", err)
		return nil
	}
	return logFile
}
