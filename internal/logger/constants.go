// Package logger provides logging functionality for the application.
package logger

// Default configuration values.
const (
	// DefaultLevel is the default logging level.
	DefaultLevel = InfoLevel
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = "console"
	// DefaultOutput is the default log destination.
	DefaultOutput = "stdout"
	// DefaultMaxSize is the default log file size in megabytes before rotation.
	DefaultMaxSize = 100
	// DefaultMaxBackups is the default number of rotated log files to retain.
	DefaultMaxBackups = 3
	// DefaultMaxAge is the default number of days to retain rotated log files.
	DefaultMaxAge = 30
)
