// Package node holds what every pipeline node shares: its name, its input
// selector expression, its output keys, and a sequential runner.
package node

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// Base carries the naming and key wiring common to all nodes.
type Base struct {
	Name        string
	Type        string
	Input       string
	Output      []string
	MinInputLen int

	expr expr
}

// NewBase validates the input expression and output keys.
func NewBase(name, nodeType, input string, output []string, minInputLen int) (*Base, error) {
	if len(output) == 0 || output[0] == "" {
		return nil, &core.ConfigError{Field: "output", Reason: "at least one output key is required"}
	}
	e, err := parseExpr(input)
	if err != nil {
		return nil, &core.ConfigError{Field: "input", Value: input, Reason: err.Error()}
	}
	return &Base{
		Name:        name,
		Type:        nodeType,
		Input:       input,
		Output:      output,
		MinInputLen: minInputLen,
		expr:        e,
	}, nil
}

// InputKeys evaluates the input expression against the state and returns
// the keys it selects, in expression order.
func (b *Base) InputKeys(state core.State) ([]string, error) {
	keys, ok := b.expr.eval(state)
	if !ok {
		return nil, &core.MissingInputError{
			Key:    b.Input,
			Reason: "no combination of state keys satisfies the input expression",
		}
	}
	if len(keys) < b.MinInputLen {
		return nil, &core.MissingInputError{
			Key:    b.Input,
			Reason: fmt.Sprintf("expected at least %d input keys, got %d", b.MinInputLen, len(keys)),
		}
	}
	return keys, nil
}

// Run executes nodes in order, feeding each the state returned by the previous one.
func Run(ctx context.Context, state core.State, nodes ...core.Node) (core.State, error) {
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		next, err := n.Execute(ctx, state)
		if err != nil {
			return state, fmt.Errorf("%s: %w", n.Name(), err)
		}
		state = next
	}
	return state, nil
}
