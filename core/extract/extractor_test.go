package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><title> Docs Home </title><script>var x = "https://tracker.example";</script></head>
<body>
<nav><a href="https://site.example/nav">Nav</a></nav>
<main>
  <p>Read the <a href="https://site.example/guide">guide</a>.</p>
  <img src="https://cdn.example/logo.png">
</main>
<footer><a href="https://site.example/legal">Legal</a></footer>
</body></html>`

func TestExtract_MainContent(t *testing.T) {
	t.Parallel()

	out, err := New().Extract(page)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<main>"))
	assert.Contains(t, out, "https://site.example/guide")
	assert.NotContains(t, out, "https://site.example/nav")
	assert.NotContains(t, out, "https://site.example/legal")
	assert.NotContains(t, out, "tracker.example")
	assert.NotContains(t, out, "logo.png")
}

func TestExtract_WithNavigation(t *testing.T) {
	t.Parallel()

	out, err := New(WithNavigation()).Extract(page)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<body>"))
	assert.Contains(t, out, "https://site.example/nav")
	assert.Contains(t, out, "https://site.example/guide")
	assert.Contains(t, out, "https://site.example/legal")
	assert.NotContains(t, out, "logo.png")
}

func TestExtract_FragmentGetsBody(t *testing.T) {
	t.Parallel()

	// The HTML parser always synthesizes a <body>.
	out, err := New().Extract(`<p>see <a href="http://b.org">b</a></p>`)
	require.NoError(t, err)
	assert.Contains(t, out, "http://b.org")
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Docs Home", Title(page))
	assert.Equal(t, "", Title("<p>no title</p>"))
}
