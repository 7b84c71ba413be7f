package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_KeepsLinkTargets(t *testing.T) {
	t.Parallel()

	md, err := New().Normalize(`<main><h1>Guide</h1><p>Read <a href="https://a.com/x">this</a>.</p></main>`)
	require.NoError(t, err)

	assert.Contains(t, md, "# Guide")
	assert.Contains(t, md, "[this](https://a.com/x)")
}

func TestNormalize_ResolvesRelativeLinks(t *testing.T) {
	t.Parallel()

	html := `<p><a href="/docs/start">start</a></p>`

	relative, err := New().Normalize(html)
	require.NoError(t, err)
	assert.Contains(t, relative, "(/docs/start)")

	absolute, err := NewForPage("https://site.example").Normalize(html)
	require.NoError(t, err)
	assert.Contains(t, absolute, "(https://site.example/docs/start)")
}
