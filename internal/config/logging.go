package config

import (
	"fmt"

	"github.com/jonesrussell/mailharvest/internal/logger"
)

// LoggingConfig holds logging-specific configuration settings.
type LoggingConfig struct {
	// Level is the logging level (debug, info, warn, error)
	Level string `yaml:"level" mapstructure:"level"`
	// Encoding is the log encoding format (json, console)
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	// Output is the log output destination (stdout, stderr, file)
	Output string `yaml:"output" mapstructure:"output"`
	// File is the log file path, only used when output is file
	File string `yaml:"file" mapstructure:"file"`
	// MaxSize is the maximum size of the log file in megabytes
	MaxSize int `yaml:"max_size" mapstructure:"max_size"`
	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
	// MaxAge is the maximum number of days to retain old log files
	MaxAge int `yaml:"max_age" mapstructure:"max_age"`
	// Compress determines if rotated log files should be compressed
	Compress bool `yaml:"compress" mapstructure:"compress"`
}

// NewLoggingConfig returns a logging configuration populated with defaults.
func NewLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      string(logger.DefaultLevel),
		Encoding:   logger.DefaultEncoding,
		Output:     logger.DefaultOutput,
		File:       "mailharvest.log",
		MaxSize:    logger.DefaultMaxSize,
		MaxBackups: logger.DefaultMaxBackups,
		MaxAge:     logger.DefaultMaxAge,
	}
}

// Validate checks the logging configuration for invalid values.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level must be one of debug, info, warn, error, got %q",
			ErrInvalidConfig, c.Level)
	}

	switch c.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: encoding must be json or console, got %q",
			ErrInvalidConfig, c.Encoding)
	}

	switch c.Output {
	case "stdout", "stderr":
	case "file":
		if c.File == "" {
			return fmt.Errorf("%w: file is required when output is file", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: output must be stdout, stderr, or file, got %q",
			ErrInvalidConfig, c.Output)
	}

	return nil
}

// ToLogger converts the logging section to the logger package's config.
func (c *LoggingConfig) ToLogger(debug bool) *logger.Config {
	level := logger.Level(c.Level)
	if debug {
		level = logger.DebugLevel
	}
	return &logger.Config{
		Level:       level,
		Development: debug,
		Encoding:    c.Encoding,
		Output:      c.Output,
		File:        c.File,
		MaxSize:     c.MaxSize,
		MaxBackups:  c.MaxBackups,
		MaxAge:      c.MaxAge,
		Compress:    c.Compress,
	}
}
