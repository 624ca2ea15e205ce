package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR"       default:":8080"`
	DatabasePath  string `envconfig:"DATABASE_PATH"   default:"local.db"`
	BusyTimeoutMS int    `envconfig:"BUSY_TIMEOUT_MS" default:"5000"`
	LogLevel      string `envconfig:"LOG_LEVEL"       default:"info"`
}

// LoadConfig reads configuration from the environment, preferring values from
// a .env file when one exists alongside the binary.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, keeping %s", cfg.LogLevel, logger.GetLevel())
	} else {
		logger.SetLevel(level)
	}

	logger.Infof("Configuration loaded: HTTPAddr=%s, DatabasePath=%s, BusyTimeoutMS=%d",
		cfg.HTTPAddr, cfg.DatabasePath, cfg.BusyTimeoutMS)
	return &cfg, nil
}
