// Package emails extracts email addresses from fetched page content.
package emails

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"

	"github.com/jonesrussell/mailharvest/internal/domain"
	"github.com/jonesrussell/mailharvest/internal/logger"
)

// emailPattern matches the canonical local-part@domain.tld shape with word
// boundaries, bounding the TLD at 2-7 letters to cut regex over-matching.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,7}\b`)

// assetSuffixes are file extensions that produce regex false positives from
// retina image names like logo@2x.png.
var assetSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp",
	".ico", ".css", ".js", ".woff", ".woff2",
}

// Extractor collects unique email addresses from page content. By default
// matching runs over the document text with script and style blocks
// stripped; with includeRaw it runs over the raw markup instead. mailto:
// link targets are collected in both modes. The extractor is a pure
// function of its input: no I/O, no shared state.
type Extractor struct {
	log        logger.Interface
	includeRaw bool
}

// NewExtractor creates an email extractor.
func NewExtractor(includeRaw bool, log logger.Interface) *Extractor {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Extractor{log: log.WithComponent("emails"), includeRaw: includeRaw}
}

// Extract returns the unique addresses found in body, lowercased and
// sorted. Addresses differing only by case collapse to one entry.
// Malformed HTML degrades to matching over the raw text.
func (e *Extractor) Extract(body string) []string {
	set := domain.NewEmailSet()

	text := body
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		e.log.Warn("unparseable html, matching over raw text", "error", err)
	} else {
		for _, target := range mailtoTargets(doc) {
			e.addIfValid(set, target)
		}
		if !e.includeRaw {
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}

	for _, match := range emailPattern.FindAllString(text, -1) {
		e.addIfValid(set, match)
	}

	return set.Sorted()
}

// addIfValid adds an address to the set unless it is a known false positive.
func (e *Extractor) addIfValid(set *domain.EmailSet, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !valid(email) {
		return
	}
	set.Add(email)
}

// mailtoTargets collects the address portion of every mailto: link.
func mailtoTargets(doc *goquery.Document) []string {
	var targets []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			return
		}

		address := href[len("mailto:"):]
		// Drop ?subject=... and friends
		if i := strings.IndexByte(address, '?'); i >= 0 {
			address = address[:i]
		}
		for _, part := range strings.Split(address, ",") {
			if part = strings.TrimSpace(part); part != "" {
				targets = append(targets, part)
			}
		}
	})

	return targets
}

// valid rejects matches that have the email shape but cannot be addresses:
// asset file names and domains whose suffix is not a registrable TLD.
func valid(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	host := email[at+1:]
	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(host, suffix) {
			return false
		}
	}

	if !emailPattern.MatchString(email) {
		return false
	}

	suffix, icann := publicsuffix.PublicSuffix(host)
	if suffix == "" || !icann {
		return false
	}

	return true
}
