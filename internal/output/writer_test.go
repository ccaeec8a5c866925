package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
	"github.com/jonesrussell/mailharvest/internal/output"
)

func sampleRecords() []*domain.Record {
	return []*domain.Record{
		{
			Domain: "example.com",
			Emails: []string{"a@example.com", "b@example.com"},
			Status: domain.StatusSucceeded,
		},
		{
			Domain: "empty.example",
			Status: domain.StatusSucceeded,
		},
		{
			Domain: "bad-domain.invalid",
			Status: domain.StatusFailed,
			Error:  "timeout: context deadline exceeded",
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	w := output.NewWriter(logger.NewNoOp())

	require.NoError(t, w.Write(sampleRecords(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, "domain,emails,status,error\n")
	assert.Contains(t, content, "example.com,a@example.com;b@example.com,succeeded,\n")
	assert.Contains(t, content, "empty.example,,succeeded,\n")
	assert.Contains(t, content, "bad-domain.invalid,,failed,timeout: context deadline exceeded\n")
}

func TestWriter_Write_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	w := output.NewWriter(logger.NewNoOp())

	require.NoError(t, w.Write(sampleRecords(), path))
	require.NoError(t, w.Write(sampleRecords()[:1], path))

	records, err := output.Read(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriter_Write_FailsOnBadPath(t *testing.T) {
	t.Parallel()

	w := output.NewWriter(logger.NewNoOp())
	err := w.Write(sampleRecords(), filepath.Join(t.TempDir(), "missing-dir", "results.csv"))

	require.ErrorIs(t, err, output.ErrCreateFile)
}

func TestRead_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	w := output.NewWriter(logger.NewNoOp())
	written := sampleRecords()

	require.NoError(t, w.Write(written, path))

	read, err := output.Read(path)
	require.NoError(t, err)
	require.Len(t, read, len(written))

	for i, rec := range read {
		assert.Equal(t, written[i].Domain, rec.Domain)
		assert.Equal(t, written[i].Status, rec.Status)
		assert.Equal(t, written[i].Error, rec.Error)
		assert.ElementsMatch(t, written[i].Emails, rec.Emails)
	}
}

func TestRead_RejectsForeignFiles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,city\nacme,berlin\n"), 0o644))

	_, err := output.Read(path)
	require.Error(t, err)
}
