// Package chunk splits Markdown text into word-sized chunks for the link node.
// Uses a simple whitespace tokenizer (words ≈ tokens).
// Chunk overlap is 0, so a URL never straddles two chunks: it contains no whitespace.
package chunk

import (
	"strings"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// DefaultSize is the chunk size used when none is given.
const DefaultSize = 512

// Metadata keys set on every chunk.
const (
	MetaSource = "source"
	MetaIndex  = "chunk"
)

// Chunker splits text into fixed-size token chunks.
type Chunker struct {
	ChunkSize int // number of tokens (words) per chunk
}

// New creates a Chunker with the given chunk size.
// Defaults to DefaultSize if chunkSize <= 0.
func New(chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultSize
	}
	return &Chunker{ChunkSize: chunkSize}
}

// Chunk splits the input text into slices of at most ChunkSize words.
// Each chunk is a contiguous block of words joined by spaces.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for i := 0; i < len(words); i += c.ChunkSize {
		end := i + c.ChunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Documents chunks text and wraps each chunk as a core.Document tagged with
// its source and position.
func (c *Chunker) Documents(source, text string) []core.Document {
	chunks := c.Chunk(text)
	docs := make([]core.Document, 0, len(chunks))
	for i, chunkText := range chunks {
		docs = append(docs, core.Document{
			PageContent: chunkText,
			Metadata: map[string]any{
				MetaSource: source,
				MetaIndex:  i,
			},
		})
	}
	return docs
}
