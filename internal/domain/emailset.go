package domain

import (
	"sort"
	"strings"
)

// EmailSet accumulates unique email addresses for one domain.
// Uniqueness is case-insensitive; addresses are stored lowercased.
type EmailSet struct {
	seen map[string]struct{}
}

// NewEmailSet creates an empty email set.
func NewEmailSet() *EmailSet {
	return &EmailSet{seen: make(map[string]struct{})}
}

// Add inserts an address into the set. Case variants of an address already
// present are ignored.
func (s *EmailSet) Add(email string) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return
	}
	s.seen[key] = struct{}{}
}

// AddAll inserts every address from the given slice.
func (s *EmailSet) AddAll(emails []string) {
	for _, e := range emails {
		s.Add(e)
	}
}

// Len returns the number of unique addresses in the set.
func (s *EmailSet) Len() int {
	return len(s.seen)
}

// Sorted returns the addresses in lexicographic order.
func (s *EmailSet) Sorted() []string {
	out := make([]string, 0, len(s.seen))
	for e := range s.seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
