package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameFromSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"https://example.com", "example_com"},
		{"https://example.com/docs/intro/", "example_com_docs_intro"},
		{"https://sub.example.com:8080/a-b", "sub_example_com_8080_a_b"},
		{"notes/page.md", "notes_page_md"},
		{"../up/page.md", "up_page_md"},
		{"", "page"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromSource(tt.source))
		})
	}
}

func TestWriter_WriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("https://example.com/docs", []byte("- <https://a.com>\n"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_docs_links.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- <https://a.com>\n", string(data))
}

func TestWriter_Stream(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)

	where, err := w.Write("https://example.com", []byte(`{"count":0}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, "stdout", where)
	assert.Equal(t, `{"count":0}`, buf.String())
}
