// Package input reads the list of target domains from a delimited file.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonesrussell/mailharvest/internal/logger"
)

// Loader reads domains from a CSV file with a header row.
type Loader struct {
	log logger.Interface
	// column is the header name of the domain-bearing column
	column string
}

// NewLoader creates a loader that reads the given header column.
func NewLoader(column string, log logger.Interface) *Loader {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Loader{log: log.WithComponent("input"), column: column}
}

// Load reads every domain from the file at path, preserving file order and
// duplicates. Blank cells are skipped with a warning. Deduplication is the
// caller's concern, not this component's.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrOpenFile, path, err)
	}
	defer f.Close()

	domains, err := l.read(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	l.log.Info("loaded domains", "path", path, "count", len(domains))
	return domains, nil
}

// read parses the CSV stream and collects the domain column values.
func (l *Loader) read(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows in the wild are ragged often enough to tolerate
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), l.column) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: want %q, header has %v", ErrMissingColumn, l.column, header)
	}

	var domains []string
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		if idx >= len(record) {
			l.log.Warn("row has no domain cell, skipping", "row", row)
			continue
		}

		domain := strings.TrimSpace(record[idx])
		if domain == "" {
			l.log.Warn("row has empty domain, skipping", "row", row)
			continue
		}
		domains = append(domains, domain)
	}

	return domains, nil
}
