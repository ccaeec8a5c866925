package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mailharvest/internal/input"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "domains.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		column  string
		content string
		want    []string
	}{
		{
			name:    "single column",
			column:  "domain",
			content: "domain\nexample.com\nexample.org\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "domain column among others",
			column:  "domain",
			content: "id,domain,notes\n1,example.com,first\n2,example.org,second\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "header match is case-insensitive",
			column:  "domain",
			content: "ID,Domain\n1,example.com\n",
			want:    []string{"example.com"},
		},
		{
			name:    "duplicates and order preserved",
			column:  "domain",
			content: "domain\nb.com\na.com\nb.com\n",
			want:    []string{"b.com", "a.com", "b.com"},
		},
		{
			name:    "blank cells skipped",
			column:  "domain",
			content: "domain,notes\nexample.com,ok\n,missing\n  ,spaces\nexample.org,ok\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "full urls pass through untouched",
			column:  "domain",
			content: "domain\nhttps://example.com/home\n",
			want:    []string{"https://example.com/home"},
		},
		{
			name:    "custom column name",
			column:  "website",
			content: "name,website\nacme,acme.example\n",
			want:    []string{"acme.example"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := input.NewLoader(tt.column, logger.NewNoOp())
			got, err := loader.Load(writeTempCSV(t, tt.content))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		loader := input.NewLoader("domain", logger.NewNoOp())
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))

		require.ErrorIs(t, err, input.ErrOpenFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		loader := input.NewLoader("domain", logger.NewNoOp())
		_, err := loader.Load(writeTempCSV(t, ""))

		require.ErrorIs(t, err, input.ErrEmptyFile)
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()

		loader := input.NewLoader("domain", logger.NewNoOp())
		_, err := loader.Load(writeTempCSV(t, "name,url\nacme,https://acme.example\n"))

		require.ErrorIs(t, err, input.ErrMissingColumn)
	})
}
