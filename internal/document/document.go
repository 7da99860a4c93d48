package document

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is the parsed representation of one fetched web page. It owns
// the raw markup and a queryable tag tree for the duration of a single
// audit run.
type Document struct {
	// pageURL is the normalized URL the page was fetched from.
	pageURL string

	// host is the authority component of pageURL, including any port.
	host string

	// raw is the fetched markup exactly as received.
	raw []byte

	// doc is the parsed tag tree.
	doc *goquery.Document
}

// New parses raw markup into a Document. Malformed markup still produces a
// best-effort tree; an error is returned only when the markup cannot be
// read at all.
func New(pageURL string, body []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	host := ""
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Host
	}

	return &Document{
		pageURL: pageURL,
		host:    host,
		raw:     body,
		doc:     goquery.NewDocumentFromNode(root),
	}, nil
}

// URL returns the normalized URL the page was fetched from.
func (d *Document) URL() string { return d.pageURL }

// Host returns the page's authority (host and optional port), or the empty
// string when the page URL could not be parsed.
func (d *Document) Host() string { return d.host }

// Size returns the raw markup length in bytes.
func (d *Document) Size() int { return len(d.raw) }

// Find returns all elements matching the CSS selector, in document order.
// Absent elements are an empty selection, never an error.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// FindMatcher returns all elements matching a precompiled selector.
// Checks compile their selectors once at package level and query through
// this to avoid re-parsing selector strings on every audit.
func (d *Document) FindMatcher(m goquery.Matcher) *goquery.Selection {
	return d.doc.FindMatcher(m)
}

// FindAttrPattern returns all elements of the given tag whose attribute
// value matches the pattern. Elements lacking the attribute never match.
func (d *Document) FindAttrPattern(tag, attr string, pattern *regexp.Regexp) *goquery.Selection {
	return d.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		value, ok := s.Attr(attr)
		return ok && pattern.MatchString(value)
	})
}

// Text returns the trimmed text content of the first element in the
// selection, or the empty string for an empty selection.
func Text(s *goquery.Selection) string {
	return strings.TrimSpace(s.First().Text())
}
