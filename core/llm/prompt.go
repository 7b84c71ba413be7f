// Package llm chains a prompt template, a language model and an output
// parser into a single call, and provides the model clients LinkPipe ships with.
package llm

import (
	"fmt"
	"strings"
	"text/template"
)

// PromptTemplate is a text/template with a declared set of input variables.
type PromptTemplate struct {
	Variables []string
	tmpl      *template.Template
}

// NewPromptTemplate parses text, which refers to variables as {{.name}}.
func NewPromptTemplate(name, text string, variables ...string) (*PromptTemplate, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt template %s: %w", name, err)
	}
	return &PromptTemplate{Variables: variables, tmpl: tmpl}, nil
}

// MustPromptTemplate is NewPromptTemplate for package-level templates.
func MustPromptTemplate(name, text string, variables ...string) *PromptTemplate {
	p, err := NewPromptTemplate(name, text, variables...)
	if err != nil {
		panic(err)
	}
	return p
}

// Format fills the template. Every declared variable must be supplied.
func (p *PromptTemplate) Format(vars map[string]any) (string, error) {
	for _, v := range p.Variables {
		if _, ok := vars[v]; !ok {
			return "", fmt.Errorf("prompt %s: missing variable %q", p.tmpl.Name(), v)
		}
	}
	var b strings.Builder
	if err := p.tmpl.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("executing prompt %s: %w", p.tmpl.Name(), err)
	}
	return b.String(), nil
}
