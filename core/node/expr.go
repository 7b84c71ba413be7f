package node

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// Input selector grammar:
//
//	expr   := term ('|' term)*
//	term   := factor ('&' factor)*
//	factor := KEY | '(' expr ')'
//
// '&' needs both sides present; '|' picks the first satisfied alternative.
type expr interface {
	eval(state core.State) ([]string, bool)
}

type keyExpr string

func (k keyExpr) eval(state core.State) ([]string, bool) {
	if !state.Has(string(k)) {
		return nil, false
	}
	return []string{string(k)}, true
}

type andExpr []expr

func (a andExpr) eval(state core.State) ([]string, bool) {
	var keys []string
	for _, e := range a {
		k, ok := e.eval(state)
		if !ok {
			return nil, false
		}
		keys = append(keys, k...)
	}
	return keys, true
}

type orExpr []expr

func (o orExpr) eval(state core.State) ([]string, bool) {
	for _, e := range o {
		if k, ok := e.eval(state); ok {
			return k, true
		}
	}
	return nil, false
}

type parser struct {
	tokens []string
	pos    int
}

func parseExpr(input string) (expr, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty input expression")
	}
	p := &parser{tokens: tokens}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.tokens[p.pos], p.pos)
	}
	return e, nil
}

func tokenize(input string) ([]string, error) {
	var tokens []string
	var ident strings.Builder
	flush := func() {
		if ident.Len() > 0 {
			tokens = append(tokens, ident.String())
			ident.Reset()
		}
	}
	for _, r := range input {
		switch {
		case r == '&' || r == '|' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.':
			ident.WriteRune(r)
		default:
			return nil, fmt.Errorf("invalid character %q", r)
		}
	}
	flush()
	return tokens, nil
}

func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *parser) parseOr() (expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	alts := orExpr{first}
	for p.peek() == "|" {
		p.pos++
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return first, nil
	}
	return alts, nil
}

func (p *parser) parseAnd() (expr, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	all := andExpr{first}
	for p.peek() == "&" {
		p.pos++
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		all = append(all, next)
	}
	if len(all) == 1 {
		return first, nil
	}
	return all, nil
}

func (p *parser) parseFactor() (expr, error) {
	tok := p.peek()
	switch tok {
	case "":
		return nil, fmt.Errorf("unexpected end of input expression")
	case "(":
		p.pos++
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return e, nil
	case ")", "&", "|":
		return nil, fmt.Errorf("unexpected token %q at position %d", tok, p.pos)
	default:
		p.pos++
		return keyExpr(tok), nil
	}
}
