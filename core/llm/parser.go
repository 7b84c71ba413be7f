package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// ListParser decodes a model reply holding a JSON array of strings.
type ListParser struct{}

// Parse accepts a bare JSON array or one wrapped in a Markdown code fence.
func (ListParser) Parse(reply string) ([]string, error) {
	text := stripFence(strings.TrimSpace(reply))
	if text == "" {
		return nil, fmt.Errorf("%w: empty model reply", core.ErrExtractionFailed)
	}

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding model reply: %w", core.ErrExtractionFailed, err)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: model reply is %T, want a JSON array", core.ErrExtractionFailed, raw)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T, want a string", core.ErrExtractionFailed, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// stripFence removes a surrounding ``` or ```json fence.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = ""
	}
	text = strings.TrimSpace(text)
	return strings.TrimSpace(strings.TrimSuffix(text, "```"))
}
