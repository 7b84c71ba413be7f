// Package core defines the pipeline interfaces for LinkPipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// PageMetadata holds metadata about the page links were extracted from.
type PageMetadata struct {
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Path      string `json:"path"`
	Title     string `json:"title"`
	Chunks    int    `json:"chunks"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// LinksJSON is the complete JSON output for a single run.
type LinksJSON struct {
	Metadata PageMetadata `json:"metadata"`
	Links    []string     `json:"links"`
	Count    int          `json:"count"`
}

// Chunk is a unit of previously fetched page content.
// Content is usually a string but upstream stages may hand over anything.
type Chunk interface {
	Content() any
}

// Document is the concrete chunk record produced by the chunker.
type Document struct {
	PageContent any            `json:"page_content"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Content returns the raw page content.
func (d Document) Content() any {
	return d.PageContent
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown (the canonical format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts an extracted link list (and metadata) into a final output format.
type Renderer interface {
	Render(links []string, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// ChatModel sends a single prompt to a language model and returns its raw reply.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Node is a single stage operating over the shared pipeline state.
type Node interface {
	Name() string
	Execute(ctx context.Context, state State) (State, error)
}
