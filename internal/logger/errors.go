// Package logger provides logging functionality for the application.
package logger

import "errors"

// Common errors returned by the logger package.
var (
	// ErrInvalidEncoding is returned when an invalid log encoding format is provided.
	ErrInvalidEncoding = errors.New("invalid log encoding format")
	// ErrInvalidOutput is returned when an invalid log output destination is provided.
	ErrInvalidOutput = errors.New("invalid log output destination")
	// ErrFileRequired is returned when file output is selected without a file path.
	ErrFileRequired = errors.New("log file path is required for file output")
	// ErrInvalidFields is returned when invalid fields are provided to a logging method.
	ErrInvalidFields = errors.New("invalid fields: must be key-value pairs")
)
