package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
)

// Config holds the process configuration read from the environment
type Config struct {
	ModConfigPath string `env:"MOD_CONFIG_PATH" envDefault:"config/config.json"`
	WorldPath     string `env:"WORLD_PATH"`
	ProfilesPath  string `env:"PROFILES_PATH"`
	LocalesPath   string `env:"LOCALES_PATH"`
	Locale        string `env:"LOCALE" envDefault:"en"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"live-like-spawns"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case logger.LogFormatJSON, logger.LogFormatText:
	default:
		return nil, fmt.Errorf(ErrMsgInvalidLogFormat, cfg.LogFormat)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case logger.LogLevelDebug, logger.LogLevelInfo, logger.LogLevelWarn, logger.LogLevelWarning, logger.LogLevelError:
	default:
		return nil, fmt.Errorf(ErrMsgInvalidLogLevel, cfg.LogLevel)
	}

	return &cfg, nil
}

// LoggerConfig returns the logger settings carried by the process config
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(
		c.LogLevel,
		c.LogFormat,
		c.ServiceName,
		c.Version,
		c.Environment,
		strings.EqualFold(c.LogLevel, logger.LogLevelDebug),
	)
}
