// Package render — JSON renderer.
// Wraps the link list and page metadata into a single JSON document.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts links and metadata into the LinksJSON structure.
func (r *JSONRenderer) Render(links []string, meta core.PageMetadata) ([]byte, error) {
	if links == nil {
		links = []string{}
	}
	out := core.LinksJSON{
		Metadata: meta,
		Links:    links,
		Count:    len(links),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
