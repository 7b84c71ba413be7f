package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/gaurav-prasanna/linkpipe/core/render"
)

const testPage = `<html>
<head><title>Test Page</title></head>
<body>
<nav><a href="https://nav.example/home">Home</a></nav>
<article>
<p>Read https://a.com/x and the guide at http://b.org/guide for details.</p>
</article>
<footer>https://footer.example/legal</footer>
</body>
</html>`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLinks_URLToJSON(t *testing.T) {
	srv := newPageServer(t)

	out, err := runCLI(t, "links", srv.URL+"/docs",
		"--provider", "ollama", "--model", "test-model",
		"--json", "--output_dir", "-", "--log-level", "error")
	require.NoError(t, err)

	var got core.LinksJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"https://a.com/x", "http://b.org/guide"}, got.Links)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "Test Page", got.Metadata.Title)
	assert.Equal(t, "/docs", got.Metadata.Path)
	assert.Equal(t, 1, got.Metadata.Chunks)
}

func TestLinks_KeepNavigation(t *testing.T) {
	srv := newPageServer(t)

	out, err := runCLI(t, "links", srv.URL,
		"--provider", "ollama", "--model", "test-model",
		"--json", "--keep_nav", "--output_dir", "-", "--log-level", "error")
	require.NoError(t, err)

	var got core.LinksJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Links, "https://footer.example/legal")
	assert.Contains(t, got.Links, "https://a.com/x")
}

func TestLinks_FileToMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("one https://one.com\n\ntwo http://two.org/p\n"), 0o644))

	out, err := runCLI(t, "links", "--file", path,
		"--provider", "ollama", "--model", "test-model",
		"--chunk_size", "2", "--output_dir", "-", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "- <https://one.com>\n")
	assert.Contains(t, out, "- <http://two.org/p>\n")
	assert.Less(t, strings.Index(out, "https://one.com"), strings.Index(out, "http://two.org/p"))
}

func TestLinks_WritesFile(t *testing.T) {
	srv := newPageServer(t)
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := runCLI(t, "links", srv.URL+"/docs",
		"--provider", "ollama", "--model", "test-model",
		"--output_dir", outDir, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Written:")
	assert.Contains(t, out, "(2 links)")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_docs_links.md"))
}

func TestLinks_Errors(t *testing.T) {
	srv := newPageServer(t)
	page := srv.URL + "/docs"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no source", args: []string{"links", "--provider", "ollama", "--model", "m"}, want: "a URL or --file is required"},
		{name: "url and file", args: []string{"links", page, "--file", "x.md"}, want: "not both"},
		{name: "two formats", args: []string{"links", page, "--json", "--pdf"}, want: "only one output format"},
		{name: "relative url", args: []string{"links", "example.com", "--provider", "ollama", "--model", "m"}, want: "invalid URL"},
		{name: "empty model", args: []string{"links", page, "--provider", "ollama", "--model", ""}, want: "llm.model"},
		{name: "unknown provider", args: []string{"links", page, "--provider", "acme", "--model", "m"}, want: "llm.provider"},
		{name: "bad chunk size", args: []string{"links", page, "--provider", "ollama", "--model", "m", "--chunk_size", "0"}, want: "chunk.size"},
		{name: "bad log level", args: []string{"links", page, "--provider", "ollama", "--model", "m", "--log-level", "loud"}, want: "log.level"},
		{name: "missing file", args: []string{"links", "--file", "nope.md", "--provider", "ollama", "--model", "m"}, want: "reading nope.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "linkpipe dev\n", out)
}

func TestSelectRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts linksOptions
		want core.Renderer
	}{
		{name: "default", opts: linksOptions{}, want: render.NewMarkdownRenderer()},
		{name: "markdown", opts: linksOptions{markdown: true}, want: render.NewMarkdownRenderer()},
		{name: "json", opts: linksOptions{json: true}, want: render.NewJSONRenderer()},
		{name: "pdf", opts: linksOptions{pdf: true}, want: render.NewPDFRenderer()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := selectRenderer(&tt.opts)
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}
