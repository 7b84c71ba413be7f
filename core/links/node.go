// Package links implements the link-extraction node: it pulls candidate URLs
// out of previously scraped content chunks and writes them back to the
// pipeline state.
//
// Textual chunks go through a fixed URL pattern. Chunks whose content is not
// text are handed to a language model, which returns a JSON list of links
// ordered from most to least important.
package links

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/gaurav-prasanna/linkpipe/core/llm"
	"github.com/gaurav-prasanna/linkpipe/core/node"
	"github.com/gaurav-prasanna/linkpipe/core/progress"
	"github.com/gaurav-prasanna/linkpipe/logger"
)

// DefaultName is the node name used when none is given.
const DefaultName = "GenerateLinks"

// UserPromptKey is the optional state key carrying the user's task.
const UserPromptKey = "user_prompt"

// urlPattern matches the lexical form of an http(s) URL.
var urlPattern = regexp.MustCompile(`https?://[^\s"<>\]]+`)

// Config is the node configuration. LLM is required.
type Config struct {
	LLM        core.ChatModel
	Verbose    bool
	UserPrompt string
}

// Node extracts relevant links from the document chunks in the state.
type Node struct {
	base       *node.Base
	chain      *llm.Chain
	userPrompt string
	log        logger.Logger
	progress   progress.Tracker
}

var _ core.Node = (*Node)(nil)

// Option customizes a Node.
type Option func(*Node)

// WithName overrides DefaultName.
func WithName(name string) Option {
	return func(n *Node) { n.base.Name = name }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(n *Node) { n.log = l }
}

// WithProgress replaces the progress tracker chosen from Config.Verbose.
func WithProgress(t progress.Tracker) Option {
	return func(n *Node) { n.progress = t }
}

// New creates a Node reading the chunk key selected by input and writing output[0].
func New(input string, output []string, cfg Config, opts ...Option) (*Node, error) {
	if cfg.LLM == nil {
		return nil, &core.ConfigError{Field: "llm_model", Reason: "a language model client is required"}
	}
	base, err := node.NewBase(DefaultName, "node", input, output, 1)
	if err != nil {
		return nil, err
	}

	n := &Node{
		base:       base,
		chain:      &llm.Chain{Prompt: fallbackPrompt, Model: cfg.LLM},
		userPrompt: cfg.UserPrompt,
		log:        logger.NewNop(),
		progress:   progress.Nop(),
	}
	if cfg.Verbose {
		n.progress = progress.New(os.Stderr, "Processing chunks")
	}
	for _, opt := range opts {
		opt(n)
	}
	n.log = n.log.With(logger.String("node", n.base.Name))
	return n, nil
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.base.Name
}

// OutputKey is the state key Execute writes.
func (n *Node) OutputKey() string {
	return n.base.Output[0]
}

// Execute extracts links from every chunk, in order, and stores them under
// the output key. On any error the state is left untouched.
func (n *Node) Execute(ctx context.Context, state core.State) (core.State, error) {
	n.log.Info("executing node")

	keys, err := n.base.InputKeys(state)
	if err != nil {
		return state, err
	}
	chunks, err := chunksFrom(keys[0], state[keys[0]])
	if err != nil {
		return state, err
	}

	userPrompt := n.userPrompt
	if p, ok := state[UserPromptKey].(string); ok && p != "" {
		userPrompt = p
	}

	n.progress.Start(len(chunks))
	defer n.progress.Done()

	relevant := []string{}
	for i, chunk := range chunks {
		content := chunk.Content()
		if text, ok := asText(content); ok {
			relevant = append(relevant, urlPattern.FindAllString(text, -1)...)
			n.progress.Increment()
			continue
		}

		n.log.Error("chunk content is not text, falling back to language model",
			logger.Int("chunk", i),
			logger.String("content_type", fmt.Sprintf("%T", content)),
		)
		found, err := n.chain.Invoke(ctx, map[string]any{
			"content":     renderContent(content),
			"user_prompt": userPrompt,
		})
		if err != nil {
			return state, fmt.Errorf("chunk %d: %w", i, err)
		}
		relevant = append(relevant, found...)
		n.progress.Increment()
	}

	n.log.Debug("links extracted", logger.Int("chunks", len(chunks)), logger.Int("links", len(relevant)))
	state[n.OutputKey()] = relevant
	return state, nil
}

// chunksFrom accepts the chunk sequence shapes upstream stages produce.
func chunksFrom(key string, v any) ([]core.Chunk, error) {
	switch docs := v.(type) {
	case []core.Chunk:
		for i, d := range docs {
			if isNilChunk(d) {
				return nil, &core.MissingInputError{Key: key, Reason: fmt.Sprintf("chunk %d is nil", i)}
			}
		}
		return docs, nil
	case []core.Document:
		out := make([]core.Chunk, len(docs))
		for i, d := range docs {
			out[i] = d
		}
		return out, nil
	case []*core.Document:
		out := make([]core.Chunk, len(docs))
		for i, d := range docs {
			if d == nil {
				return nil, &core.MissingInputError{Key: key, Reason: fmt.Sprintf("chunk %d is nil", i)}
			}
			out[i] = d
		}
		return out, nil
	case []any:
		out := make([]core.Chunk, len(docs))
		for i, d := range docs {
			c, ok := d.(core.Chunk)
			if !ok {
				return nil, &core.MissingInputError{Key: key, Reason: fmt.Sprintf("chunk %d is %T, not a document", i, d)}
			}
			if isNilChunk(c) {
				return nil, &core.MissingInputError{Key: key, Reason: fmt.Sprintf("chunk %d is nil", i)}
			}
			out[i] = c
		}
		return out, nil
	case nil:
		return nil, &core.MissingInputError{Key: key, Reason: "value is nil"}
	default:
		return nil, &core.MissingInputError{Key: key, Reason: fmt.Sprintf("value is %T, want a sequence of documents", v)}
	}
}

func isNilChunk(c core.Chunk) bool {
	if c == nil {
		return true
	}
	d, ok := c.(*core.Document)
	return ok && d == nil
}

// asText reports whether content is text. A String method that panics
// (typically on a nil receiver) makes the content non-text.
func asText(content any) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	switch c := content.(type) {
	case string:
		return c, true
	case []byte:
		return string(c), true
	case fmt.Stringer:
		return c.String(), true
	}
	return "", false
}

// renderContent turns non-text content into something a model can read.
func renderContent(content any) string {
	b, err := json.Marshal(content)
	if err != nil {
		return fmt.Sprintf("%v", content)
	}
	return string(b)
}
