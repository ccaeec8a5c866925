package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mailharvest/internal/domain"
)

func TestRecord_Transitions(t *testing.T) {
	t.Parallel()

	t.Run("pending to succeeded", func(t *testing.T) {
		t.Parallel()

		rec := domain.NewRecord("example.com")
		require.Equal(t, domain.StatusPending, rec.Status)

		rec.Succeed([]string{"a@example.com"})
		assert.Equal(t, domain.StatusSucceeded, rec.Status)
		assert.Equal(t, []string{"a@example.com"}, rec.Emails)
	})

	t.Run("pending to failed", func(t *testing.T) {
		t.Parallel()

		rec := domain.NewRecord("example.com")
		rec.Fail("timeout after 3 attempts")

		assert.Equal(t, domain.StatusFailed, rec.Status)
		assert.Equal(t, "timeout after 3 attempts", rec.Error)
		assert.Empty(t, rec.Emails)
	})

	t.Run("terminal status never transitions backward", func(t *testing.T) {
		t.Parallel()

		rec := domain.NewRecord("example.com")
		rec.Fail("unreachable")
		rec.Succeed([]string{"a@example.com"})

		assert.Equal(t, domain.StatusFailed, rec.Status)
		assert.Empty(t, rec.Emails)
	})
}

func TestStatus_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status domain.Status
		want   bool
	}{
		{name: "pending", status: domain.StatusPending, want: true},
		{name: "succeeded", status: domain.StatusSucceeded, want: true},
		{name: "failed", status: domain.StatusFailed, want: true},
		{name: "unknown", status: domain.Status("running"), want: false},
		{name: "empty", status: domain.Status(""), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestEmailSet_CaseInsensitiveUniqueness(t *testing.T) {
	t.Parallel()

	set := domain.NewEmailSet()
	set.Add("Info@Example.com")
	set.Add("info@example.com")
	set.Add("INFO@EXAMPLE.COM")
	set.Add("sales@example.com")
	set.Add("  ")

	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"info@example.com", "sales@example.com"}, set.Sorted())
}

func TestEmailSet_AddAll(t *testing.T) {
	t.Parallel()

	set := domain.NewEmailSet()
	set.AddAll([]string{"b@example.com", "a@example.com", "B@example.com"})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, set.Sorted())
}
