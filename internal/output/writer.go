// Package output persists per-domain harvest results as CSV.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

// emailSeparator joins addresses inside the emails CSV field. Semicolon
// keeps the field unambiguous inside comma-delimited rows.
const emailSeparator = ";"

// header is the fixed output header row.
var header = []string{"domain", "emails", "status", "error"}

// Common errors returned by the output package. Both are fatal: results
// that cannot be persisted abort the run.
var (
	// ErrCreateFile is returned when the output file cannot be created.
	ErrCreateFile = errors.New("cannot create output file")
	// ErrWriteFile is returned when rows cannot be written.
	ErrWriteFile = errors.New("cannot write output file")
	// ErrBadHeader is returned by Read when the file lacks the expected header.
	ErrBadHeader = errors.New("unexpected results header")
)

// Writer serializes harvest records to a CSV file.
type Writer struct {
	log logger.Interface
}

// NewWriter creates a result writer.
func NewWriter(log logger.Interface) *Writer {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Writer{log: log.WithComponent("output")}
}

// Write creates or overwrites the file at path with one row per record:
// domain, semicolon-joined emails (empty when none), status, and error.
func (w *Writer) Write(records []*domain.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCreateFile, path, err)
	}
	defer f.Close()

	if err := writeRows(f, records); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWriteFile, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWriteFile, path, err)
	}

	w.log.Info("results written", "path", path, "rows", len(records))
	return nil
}

// writeRows streams the header and every record to the given writer.
func writeRows(out io.Writer, records []*domain.Record) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.Domain,
			strings.Join(rec.Emails, emailSeparator),
			string(rec.Status),
			rec.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses a results file written by Write back into records. The
// emails field splits on the separator; an empty field yields no emails.
func Read(path string) ([]*domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(header)

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read results header: %w", err)
	}
	for i, name := range header {
		if first[i] != name {
			return nil, fmt.Errorf("%w: got %v", ErrBadHeader, first)
		}
	}

	var records []*domain.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read results row: %w", err)
		}

		rec := &domain.Record{
			Domain: row[0],
			Status: domain.Status(row[2]),
			Error:  row[3],
		}
		if row[1] != "" {
			rec.Emails = strings.Split(row[1], emailSeparator)
		}
		records = append(records, rec)
	}

	return records, nil
}
