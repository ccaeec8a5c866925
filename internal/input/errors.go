package input

import "errors"

// Common errors returned by the input package. All of them are fatal: a
// run that cannot read its domain list does not start.
var (
	// ErrOpenFile is returned when the input file cannot be opened.
	ErrOpenFile = errors.New("cannot open input file")
	// ErrEmptyFile is returned when the input file has no header row.
	ErrEmptyFile = errors.New("input file is empty")
	// ErrMissingColumn is returned when the header lacks the domain column.
	ErrMissingColumn = errors.New("input file is missing the domain column")
)
