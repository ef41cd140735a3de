package logger

import (
	"io"
	stdlog "log"

	"gamedatatrack/internal/common"
	"gamedatatrack/internal/config"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	loggerConfig := ConvertConfig(cfg)

	if err := validateConfig(loggerConfig); err != nil {
		return zerolog.Logger{}, err
	}

	var writers []io.Writer
	if loggerConfig.EnableConsole {
		writers = append(writers, createConsoleWriter(loggerConfig.Format))
	}
	if loggerConfig.EnableFile {
		writers = append(writers, createFileWriter(loggerConfig))
	}
	if len(writers) == 0 {
		return zerolog.Logger{}, common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(loggerConfig.Level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(loggerConfig.Level)
	stdlog.SetOutput(zerologInstance)
	stdlog.SetFlags(0)

	return zerologInstance, nil
}

// validateConfig validates the logger configuration
func validateConfig(cfg LoggerConfig) error {
	if cfg.EnableFile && cfg.FilePath == "" {
		return common.NewValidationError("file_path", cfg.FilePath, "file path required when file logging enabled")
	}
	if cfg.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", cfg.MaxSizeMB, "max size must be positive")
	}
	return nil
}
