package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/LiveLikeSpawns_Go/internal/config"
	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
)

// SetupLogger initializes the application logger.
// Output always goes to stdout; when LogDir is set it is also written to a timestamped
// session file, and old session files beyond the retention count are removed.
// Returns the log file handle (nil without LogDir, caller must close otherwise).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, stdout io.Writer) (*os.File, error) {
	var (
		logFile *os.File
		w       = stdout
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		var err error
		logFile, err = os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}

		w = io.MultiWriter(stdout, logFile)
	}

	logCfg := cfg.LoggerConfig()
	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"mod_config", cfg.ModConfigPath,
		"world", cfg.WorldPath,
		"profiles", cfg.ProfilesPath,
		"locales", cfg.LocalesPath,
		"locale", cfg.Locale)

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// Session file names sort chronologically.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - LogFileRetentionCount
		for i := 0; i < toDelete; i++ {
			if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
				fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i], err)
			}
		}
	}
}
