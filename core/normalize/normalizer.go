// Package normalize implements the Normalizer interface.
// It converts cleaned HTML into Markdown, the format the chunker and the
// link node consume.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	// Domain, when set, resolves relative hrefs against it so they come out
	// as absolute http(s) URLs.
	Domain string
}

// New creates a MarkdownNormalizer that leaves relative links alone.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// NewForPage creates a MarkdownNormalizer resolving links against pageURL.
func NewForPage(pageURL string) *MarkdownNormalizer {
	return &MarkdownNormalizer{Domain: pageURL}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	var opts []converter.ConvertOptionFunc
	if n.Domain != "" {
		opts = append(opts, converter.WithDomain(n.Domain))
	}
	markdown, err := htmltomarkdown.ConvertString(html, opts...)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
