// Package links discovers keyword-matched subpage URLs on a fetched page.
package links

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

// Schemes that never lead to a fetchable subpage.
var skippedSchemes = []string{"mailto:", "tel:", "javascript:", "data:"}

// Discoverer scans homepage HTML for links worth following. Matching is a
// case-insensitive substring check of each keyword against the anchor text
// and the resolved URL path.
type Discoverer struct {
	log logger.Interface
	// followForms also treats form action targets as candidates
	followForms bool
}

// NewDiscoverer creates a link discoverer.
func NewDiscoverer(followForms bool, log logger.Interface) *Discoverer {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Discoverer{log: log.WithComponent("links"), followForms: followForms}
}

// Discover returns up to max candidate subpage URLs found in body, resolved
// against baseURL, deduplicated in first-seen order. Malformed HTML degrades
// to an empty result rather than an error.
func (d *Discoverer) Discover(body, baseURL string, keywords []string, max int) []domain.CandidateURL {
	if max <= 0 || len(keywords) == 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		d.log.Warn("unparseable html, no links discovered", "base_url", baseURL, "error", err)
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		d.log.Warn("invalid base url, no links discovered", "base_url", baseURL, "error", err)
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []domain.CandidateURL

	add := func(resolved *url.URL, keyword string) {
		target := resolved.String()
		if _, dup := seen[target]; dup {
			return
		}
		seen[target] = struct{}{}
		candidates = append(candidates, domain.CandidateURL{URL: target, Keyword: keyword})
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		resolved := resolve(base, href)
		if resolved == nil {
			return true
		}

		keyword := match(keywords, sel.Text(), resolved.Path)
		if keyword == "" {
			return true
		}

		add(resolved, keyword)
		return len(candidates) < max
	})

	if d.followForms && len(candidates) < max {
		doc.Find("form[action]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			action, _ := sel.Attr("action")
			resolved := resolve(base, action)
			if resolved == nil {
				return true
			}

			keyword := match(keywords, "", resolved.Path)
			if keyword == "" {
				return true
			}

			add(resolved, keyword)
			return len(candidates) < max
		})
	}

	return candidates
}

// resolve turns an href into an absolute, fetchable URL against base.
// Returns nil for empty, fragment-only, or non-HTTP targets.
func resolve(base *url.URL, href string) *url.URL {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil
	}

	lower := strings.ToLower(href)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return nil
		}
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}
	if resolved.Host == "" {
		return nil
	}

	// Fragments identify positions on a page, not distinct pages
	resolved.Fragment = ""
	return resolved
}

// match returns the first keyword contained in the anchor text or URL path,
// or the empty string when none matches.
func match(keywords []string, anchorText, path string) string {
	text := strings.ToLower(anchorText)
	lowerPath := strings.ToLower(path)

	for _, keyword := range keywords {
		k := strings.ToLower(keyword)
		if k == "" {
			continue
		}
		if strings.Contains(text, k) || strings.Contains(lowerPath, k) {
			return keyword
		}
	}
	return ""
}
