// Package domain provides domain models used across the application.
package domain

// Status represents the crawl status of a single input domain.
type Status string

const (
	// StatusPending indicates the domain has not been processed yet.
	StatusPending Status = "pending"
	// StatusSucceeded indicates the homepage was fetched and all sampled
	// subpages were attempted, even if no emails were found.
	StatusSucceeded Status = "succeeded"
	// StatusFailed indicates the homepage could not be fetched after retries.
	StatusFailed Status = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}

// Record holds the outcome of processing one input domain.
// A record starts pending and transitions to exactly one terminal status.
type Record struct {
	// Domain is the input domain as read from the input file
	Domain string `json:"domain"`
	// Emails are the unique addresses found across homepage and subpages
	Emails []string `json:"emails,omitempty"`
	// Status is the terminal crawl status
	Status Status `json:"status"`
	// Error describes why the domain failed, empty on success
	Error string `json:"error,omitempty"`
}

// NewRecord creates a pending record for the given input domain.
func NewRecord(domain string) *Record {
	return &Record{
		Domain: domain,
		Status: StatusPending,
	}
}

// Succeed marks the record as succeeded with the final email set.
// The transition is ignored if the record already reached a terminal status.
func (r *Record) Succeed(emails []string) {
	if r.Status != StatusPending {
		return
	}
	r.Emails = emails
	r.Status = StatusSucceeded
}

// Fail marks the record as failed with the captured error message.
// The transition is ignored if the record already reached a terminal status.
func (r *Record) Fail(reason string) {
	if r.Status != StatusPending {
		return
	}
	r.Status = StatusFailed
	r.Error = reason
}
