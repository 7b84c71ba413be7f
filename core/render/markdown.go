// Package render provides output renderers for the LinkPipe pipeline.
// This file implements the Markdown renderer: a bullet list of links.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// MarkdownRenderer writes the links as a Markdown bullet list under a heading.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown document as bytes.
func (r *MarkdownRenderer) Render(links []string, meta core.PageMetadata) ([]byte, error) {
	var b strings.Builder

	title := meta.Title
	if title == "" {
		title = meta.URL
	}
	fmt.Fprintf(&b, "# Links: %s\n\n", title)
	if meta.URL != "" {
		fmt.Fprintf(&b, "Source: <%s>\n\n", meta.URL)
	}
	if len(links) == 0 {
		b.WriteString("_No links found._\n")
		return []byte(b.String()), nil
	}
	for _, link := range links {
		fmt.Fprintf(&b, "- <%s>\n", link)
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
