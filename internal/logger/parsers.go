package logger

import (
	"strings"

	"gamedatatrack/internal/config"

	"github.com/rs/zerolog"
)

// ConvertConfig maps a config.LogConfig onto a LoggerConfig, falling back to
// defaults for unset or unknown values.
func ConvertConfig(cfg config.LogConfig) LoggerConfig {
	loggerConfig := DefaultLoggerConfig()

	if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil && cfg.LogLevel != "" {
		loggerConfig.Level = level
	}

	loggerConfig.Format = parseFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig
}

// parseFormat converts a format string to LogFormat
func parseFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
