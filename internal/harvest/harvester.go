// Package harvest sequences the per-domain crawl pipeline: homepage fetch,
// subpage discovery, email extraction, and politeness pacing.
package harvest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jonesrussell/mailharvest/internal/config"
	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

// PageFetcher retrieves a URL and classifies the outcome.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) domain.FetchResult
}

// LinkDiscoverer finds keyword-matched subpage candidates in homepage HTML.
type LinkDiscoverer interface {
	Discover(body, baseURL string, keywords []string, max int) []domain.CandidateURL
}

// EmailExtractor collects unique email addresses from page content.
type EmailExtractor interface {
	Extract(body string) []string
}

// Harvester processes domains sequentially. Each domain is fully processed
// (homepage plus all sampled subpages) before the next begins; a domain's
// failure never aborts the run.
type Harvester struct {
	fetcher    PageFetcher
	discoverer LinkDiscoverer
	extractor  EmailExtractor
	log        logger.Interface
	cfg        *config.HarvestConfig
	// limiter paces every outbound request; nil when the politeness delay
	// is zero
	limiter *rate.Limiter
}

// NewHarvester creates a harvester from its pipeline components.
func NewHarvester(
	cfg *config.HarvestConfig,
	pageFetcher PageFetcher,
	discoverer LinkDiscoverer,
	extractor EmailExtractor,
	log logger.Interface,
) *Harvester {
	if log == nil {
		log = logger.NewNoOp()
	}

	var limiter *rate.Limiter
	if cfg.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}

	return &Harvester{
		fetcher:    pageFetcher,
		discoverer: discoverer,
		extractor:  extractor,
		log:        log.WithComponent("harvest"),
		cfg:        cfg,
		limiter:    limiter,
	}
}

// Run processes every domain in order and returns one record per input
// domain, order-preserving. Cancelling the context finishes the in-flight
// domain and marks the rest failed so the output still covers every input.
func (h *Harvester) Run(ctx context.Context, domains []string) []*domain.Record {
	runLog := h.log.With("run_id", uuid.NewString())
	started := time.Now()

	records := make([]*domain.Record, 0, len(domains))
	var succeeded, failed, totalEmails int

	for i, d := range domains {
		if ctx.Err() != nil {
			rec := domain.NewRecord(d)
			rec.Fail("run cancelled")
			records = append(records, rec)
			failed++
			continue
		}

		runLog.Info("processing domain", "domain", d, "position", i+1, "total", len(domains))

		rec := h.ProcessDomain(ctx, d)
		records = append(records, rec)

		switch rec.Status {
		case domain.StatusSucceeded:
			succeeded++
			totalEmails += len(rec.Emails)
			runLog.Info("domain done", "domain", d, "emails", len(rec.Emails))
		default:
			failed++
			runLog.Warn("domain failed", "domain", d, "error", rec.Error)
		}
	}

	runLog.Info("run complete",
		"domains", len(domains),
		"succeeded", succeeded,
		"failed", failed,
		"emails", totalEmails,
		"duration", time.Since(started).String(),
	)

	return records
}

// ProcessDomain crawls one domain: homepage first, then up to the
// configured number of keyword-matched subpages. Subpage failures are
// logged and skipped; only a homepage failure fails the domain.
func (h *Harvester) ProcessDomain(ctx context.Context, d string) *domain.Record {
	rec := domain.NewRecord(d)
	log := h.log.WithDomain(d)

	homepage, result := h.fetchHomepage(ctx, d)
	if !result.OK() {
		rec.Fail(describe(result))
		return rec
	}

	set := domain.NewEmailSet()
	set.AddAll(h.extractor.Extract(result.Body))

	candidates := h.discoverer.Discover(result.Body, homepage, h.cfg.Keywords, h.cfg.MaxSubpages)
	for _, candidate := range candidates {
		if err := h.pace(ctx); err != nil {
			break
		}

		sub := h.fetcher.Fetch(ctx, candidate.URL)
		if !sub.OK() {
			log.Warn("subpage fetch failed, skipping",
				"url", candidate.URL,
				"keyword", candidate.Keyword,
				"error", describe(sub),
			)
			continue
		}

		found := h.extractor.Extract(sub.Body)
		set.AddAll(found)
		log.Debug("subpage extracted",
			"url", candidate.URL,
			"keyword", candidate.Keyword,
			"emails", len(found),
		)
	}

	rec.Succeed(set.Sorted())
	return rec
}

// fetchHomepage normalizes the domain to a URL and fetches it, optionally
// falling back from https to http when the https attempt dies at the
// transport level (TLS or connection errors, not timeouts).
func (h *Harvester) fetchHomepage(ctx context.Context, d string) (string, domain.FetchResult) {
	url, hadScheme := normalize(d, h.cfg.DefaultScheme)

	if err := h.pace(ctx); err != nil {
		return url, domain.FetchResult{URL: url, Outcome: domain.OutcomeNetworkError, Err: err}
	}

	result := h.fetcher.Fetch(ctx, url)
	if result.OK() || hadScheme || !h.cfg.FallbackHTTP {
		return url, result
	}
	if h.cfg.DefaultScheme != "https" || result.Outcome != domain.OutcomeNetworkError {
		return url, result
	}

	fallback := "http://" + strings.TrimPrefix(url, "https://")
	h.log.Debug("https failed, retrying over http", "domain", d, "url", fallback)

	if err := h.pace(ctx); err != nil {
		return url, result
	}

	fallbackResult := h.fetcher.Fetch(ctx, fallback)
	if fallbackResult.OK() {
		return fallback, fallbackResult
	}

	// Report the original https failure; it is the more useful diagnosis
	return url, result
}

// pace blocks until the politeness limiter releases the next request slot.
func (h *Harvester) pace(ctx context.Context) error {
	if h.limiter == nil {
		return ctx.Err()
	}
	return h.limiter.Wait(ctx)
}

// normalize builds a homepage URL from an input domain. Inputs that already
// carry a scheme pass through untouched.
func normalize(d, defaultScheme string) (url string, hadScheme bool) {
	if strings.Contains(d, "://") {
		return d, true
	}
	return defaultScheme + "://" + d, false
}

// describe renders a fetch failure for records and logs.
func describe(result domain.FetchResult) string {
	switch result.Outcome {
	case domain.OutcomeHTTPError:
		return fmt.Sprintf("%s: status %d", result.Outcome, result.StatusCode)
	case domain.OutcomeSuccess:
		return ""
	default:
		if result.Err != nil {
			return fmt.Sprintf("%s: %v", result.Outcome, result.Err)
		}
		return string(result.Outcome)
	}
}
