package domain

// Outcome classifies the result of fetching a single URL.
type Outcome string

const (
	// OutcomeSuccess indicates a 2xx response with a readable body.
	OutcomeSuccess Outcome = "success"
	// OutcomeHTTPError indicates a non-2xx response.
	OutcomeHTTPError Outcome = "http_error"
	// OutcomeTimeout indicates the request exceeded its deadline.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeNetworkError indicates a transport-level failure.
	OutcomeNetworkError Outcome = "network_error"
)

// FetchResult holds the outcome of one fetch attempt. Failures are encoded
// in the Outcome tag rather than returned as errors, so callers branch on
// the tag and never see a fetch error escape the fetcher boundary.
type FetchResult struct {
	// URL is the requested URL
	URL string
	// Outcome classifies how the fetch ended
	Outcome Outcome
	// StatusCode is the HTTP status code, zero when no response was received
	StatusCode int
	// Body is the response body, empty unless Outcome is success
	Body string
	// Err is the underlying transport error, nil unless the fetch failed
	// before a response was received
	Err error
}

// OK reports whether the fetch produced a usable body.
func (r FetchResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// CandidateURL is a subpage link discovered on a homepage, together with
// the keyword that justified following it.
type CandidateURL struct {
	URL     string
	Keyword string
}
