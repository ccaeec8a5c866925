// Package logger provides logging functionality for the application.
package logger

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
	// FatalLevel logs fatal messages and exits.
	FatalLevel Level = "fatal"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level.
	Level Level `yaml:"level"`
	// Development enables development mode with human-friendly timestamps.
	Development bool `yaml:"development"`
	// Encoding sets the logger's encoding (json, console).
	Encoding string `yaml:"encoding"`
	// Output is the log destination (stdout, stderr, file).
	Output string `yaml:"output"`
	// File is the log file path, only used when Output is "file".
	File string `yaml:"file"`
	// MaxSize is the maximum size of the log file in megabytes before rotation.
	MaxSize int `yaml:"max_size"`
	// MaxBackups is the maximum number of rotated log files to retain.
	MaxBackups int `yaml:"max_backups"`
	// MaxAge is the maximum number of days to retain rotated log files.
	MaxAge int `yaml:"max_age"`
	// Compress determines whether rotated log files are gzipped.
	Compress bool `yaml:"compress"`
}
