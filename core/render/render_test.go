package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/linkpipe/core"
)

var meta = core.PageMetadata{
	URL:    "https://site.example/docs",
	Domain: "site.example",
	Path:   "/docs",
	Title:  "Docs",
	Chunks: 2,
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	out, err := NewMarkdownRenderer().Render([]string{"https://a.com/x", "http://b.org"}, meta)
	require.NoError(t, err)
	assert.Equal(t, "# Links: Docs\n\nSource: <https://site.example/docs>\n\n- <https://a.com/x>\n- <http://b.org>\n", string(out))

	empty, err := NewMarkdownRenderer().Render(nil, core.PageMetadata{URL: "file.md"})
	require.NoError(t, err)
	assert.Contains(t, string(empty), "# Links: file.md")
	assert.Contains(t, string(empty), "_No links found._")
	assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	out, err := NewJSONRenderer().Render([]string{"https://a.com", "https://a.com"}, meta)
	require.NoError(t, err)

	var got core.LinksJSON
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, meta, got.Metadata)
	assert.Equal(t, []string{"https://a.com", "https://a.com"}, got.Links)
	assert.Equal(t, 2, got.Count)

	empty, err := NewJSONRenderer().Render(nil, meta)
	require.NoError(t, err)
	assert.Contains(t, string(empty), `"links": []`)
}

func TestPDFRenderer(t *testing.T) {
	t.Parallel()

	long := "https://a.com/" + string(bytes.Repeat([]byte("x"), 200))
	out, err := NewPDFRenderer().Render([]string{"https://a.com", long}, meta)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())

	_, err = NewPDFRenderer().Render(nil, core.PageMetadata{})
	require.NoError(t, err)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "https://ü.example/ñ", truncate("https://ü.example/ñ", 19))
	assert.Equal(t, "https://ü...", truncate("https://ü.example/ñ", 12))
}
