package emails_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mailharvest/internal/emails"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

func extract(t *testing.T, body string) []string {
	t.Helper()

	return emails.NewExtractor(false, logger.NewNoOp()).Extract(body)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	body := `<html><body>
<p>Reach us at info@example.com or sales@example.org.</p>
</body></html>`

	assert.Equal(t, []string{"info@example.com", "sales@example.org"}, extract(t, body))
}

func TestExtractor_Extract_CaseInsensitiveDedupe(t *testing.T) {
	t.Parallel()

	body := `Info@Example.com INFO@EXAMPLE.COM info@example.com`
	got := extract(t, body)

	require.Len(t, got, 1, "case variants must collapse to one entry")
	assert.Equal(t, "info@example.com", got[0])
}

func TestExtractor_Extract_MailtoLinks(t *testing.T) {
	t.Parallel()

	body := `<html><body>
<a href="mailto:Support@Example.com?subject=Hello">Email support</a>
<a href="mailto:first@example.com,second@example.com">Email both</a>
</body></html>`

	assert.Equal(t,
		[]string{"first@example.com", "second@example.com", "support@example.com"},
		extract(t, body))
}

func TestExtractor_Extract_ScriptAndStyleExcludedByDefault(t *testing.T) {
	t.Parallel()

	body := `<html><body>
<p>visible@example.com</p>
<script>var tracker = "hidden@example.com";</script>
<style>/* styled@example.com */</style>
</body></html>`

	assert.Equal(t, []string{"visible@example.com"}, extract(t, body))
}

func TestExtractor_Extract_IncludeRawMatchesEverything(t *testing.T) {
	t.Parallel()

	body := `<html><body>
<p>visible@example.com</p>
<script>var tracker = "hidden@example.com";</script>
</body></html>`

	got := emails.NewExtractor(true, logger.NewNoOp()).Extract(body)

	assert.Equal(t, []string{"hidden@example.com", "visible@example.com"}, got)
}

func TestExtractor_Extract_RejectsFalsePositives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "retina image name", body: `<img src="assets/logo@2x.png">`},
		{name: "stylesheet artifact", body: `see theme@dark.css for details`},
		{name: "unknown tld", body: `ping node@cluster.internal9`},
		{name: "no local part", body: `lonely @example.com text`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, extract(t, tt.body))
		})
	}
}

func TestExtractor_Extract_PlainTextInput(t *testing.T) {
	t.Parallel()

	// Non-HTML input still yields matches
	got := extract(t, "contact: a@example.com / b@example.com")

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got)
}

func TestExtractor_Extract_EmptyAndNoMatches(t *testing.T) {
	t.Parallel()

	assert.Empty(t, extract(t, ""))
	assert.Empty(t, extract(t, "<html><body><p>no addresses here</p></body></html>"))
}

func TestExtractor_Extract_LargeBody(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("<p>filler paragraph with no address</p>\n")
	}
	sb.WriteString("<p>needle@example.com</p>")

	assert.Equal(t, []string{"needle@example.com"}, extract(t, sb.String()))
}
