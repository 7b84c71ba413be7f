// Package extract implements the Extractor interface.
// It isolates the main content from a full HTML page by:
//  1. Finding the best content container (<main>, <article>, or <body>)
//  2. Removing noise elements (scripts, media, forms, ads)
//
// Anchors are kept so their hrefs survive into the Markdown chunks.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// None of them can carry a useful link.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".ads", ".advertisement",
}

// navigationSelectors hold site chrome. Their links are usually boilerplate
// and are dropped unless the extractor is asked to keep navigation.
var navigationSelectors = []string{
	"nav", "footer", "header",
	".sidebar", ".menu", ".navigation",
}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct {
	keepNavigation bool
}

// Option configures an HTMLExtractor.
type Option func(*HTMLExtractor)

// WithNavigation keeps nav, header, footer and sidebar links.
func WithNavigation() Option {
	return func(e *HTMLExtractor) { e.keepNavigation = true }
}

// New creates an HTMLExtractor.
func New(opts ...Option) *HTMLExtractor {
	e := &HTMLExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the main content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	selectors := noiseSelectors
	if !e.keepNavigation {
		selectors = append(append([]string{}, noiseSelectors...), navigationSelectors...)
	}
	for _, sel := range selectors {
		doc.Find(sel).Remove()
	}

	// With navigation kept, <body> is the only container holding all of it.
	containers := []string{"main", "article", "body"}
	if e.keepNavigation {
		containers = []string{"body"}
	}

	var content *goquery.Selection
	for _, tag := range containers {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}

// Title returns the trimmed <title> text of a page, or "".
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
