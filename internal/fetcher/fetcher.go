// Package fetcher retrieves pages over HTTP with retries and classifies
// every outcome into a tagged result, so fetch failures never escape as
// errors.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/jonesrussell/mailharvest/internal/config"
	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

// HTTP status boundaries used for outcome classification.
const (
	statusOKLow        = 200
	statusOKHigh       = 299
	statusServerErrLow = 500
)

// Fetcher issues GET requests with a configured user agent, per-request
// timeout, bounded response bodies, and exponential backoff retries for
// transient failures.
type Fetcher struct {
	client        *http.Client
	log           logger.Interface
	userAgent     string
	maxRetries    int
	retryDelay    time.Duration
	maxRetryDelay time.Duration
	multiplier    float64
	maxBodySize   int64
}

// New creates a fetcher from the harvest configuration.
func New(cfg *config.HarvestConfig, log logger.Interface) *Fetcher {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Fetcher{
		client:        &http.Client{Timeout: cfg.Timeout},
		log:           log.WithComponent("fetcher"),
		userAgent:     cfg.UserAgent,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay,
		maxRetryDelay: cfg.MaxRetryDelay,
		multiplier:    cfg.RetryMultiplier,
		maxBodySize:   cfg.MaxBodySize,
	}
}

// Fetch retrieves the given URL. Transport failures, timeouts, and 5xx
// responses are retried up to the configured attempt budget; all other
// non-2xx responses return immediately as http_error. The returned result
// always carries an outcome tag and never panics or errors past this
// boundary.
func (f *Fetcher) Fetch(ctx context.Context, url string) domain.FetchResult {
	wait := &backoff{
		delay:      f.retryDelay,
		maxDelay:   f.maxRetryDelay,
		multiplier: f.multiplier,
	}

	var result domain.FetchResult
	attempts := f.maxRetries + 1

	for attempt := 1; attempt <= attempts; attempt++ {
		result = f.fetchOnce(ctx, url)
		if !retryable(result) {
			return result
		}

		if attempt == attempts {
			break
		}

		f.log.Debug("retrying fetch",
			"url", url,
			"attempt", attempt,
			"outcome", string(result.Outcome),
		)
		if err := sleep(ctx, wait.next()); err != nil {
			// Cancelled mid-backoff; report the last observed outcome
			return result
		}
	}

	return result
}

// fetchOnce performs a single GET attempt and classifies the outcome.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) domain.FetchResult {
	result := domain.FetchResult{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		result.Outcome = domain.OutcomeNetworkError
		result.Err = fmt.Errorf("build request: %w", err)
		return result
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		result.Err = err
		result.Outcome = classifyTransportError(err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	if resp.StatusCode < statusOKLow || resp.StatusCode > statusOKHigh {
		result.Outcome = domain.OutcomeHTTPError
		result.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		return result
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		result.Err = fmt.Errorf("read body: %w", err)
		result.Outcome = classifyTransportError(err)
		return result
	}

	result.Body = string(body)
	result.Outcome = domain.OutcomeSuccess
	return result
}

// classifyTransportError distinguishes timeouts from other network failures.
func classifyTransportError(err error) domain.Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.OutcomeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.OutcomeTimeout
	}

	return domain.OutcomeNetworkError
}

// retryable reports whether a result's outcome warrants another attempt.
// Timeouts, network errors, and 5xx responses are transient; 4xx and other
// client-visible statuses are not.
func retryable(result domain.FetchResult) bool {
	switch result.Outcome {
	case domain.OutcomeTimeout, domain.OutcomeNetworkError:
		return true
	case domain.OutcomeHTTPError:
		return result.StatusCode >= statusServerErrLow
	default:
		return false
	}
}
