package llm

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// Chain runs prompt -> model -> parser.
type Chain struct {
	Prompt *PromptTemplate
	Model  core.ChatModel
	Parser ListParser
}

// Invoke formats the prompt with vars, sends it to the model and parses the reply.
func (c *Chain) Invoke(ctx context.Context, vars map[string]any) ([]string, error) {
	prompt, err := c.Prompt.Format(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: formatting prompt: %w", core.ErrExtractionFailed, err)
	}
	reply, err := c.Model.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: model call: %w", core.ErrExtractionFailed, err)
	}
	return c.Parser.Parse(reply)
}
