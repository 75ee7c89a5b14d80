// Package parser turns a token stream into a syntax tree by recursive
// descent, one function per grammar rule. The parser fails fast: the
// first grammar violation returns an error and no partial tree.
package parser

import (
	"strings"

	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/token"
)

// Parser walks a token list with a cursor. The tokens must already be
// filtered of WHITESPACE and COMMENT kinds (see ParseTokens).
type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes a complete program and fails if tokens remain after the
// closing dot.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	prog, err = p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, &errors.UnexpectedTokenError{Expected: "end of file", Got: p.tokens[p.pos]}
	}
	return prog, nil
}

// current returns the token under the cursor.
func (p *Parser) current() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance moves the cursor forward one token.
func (p *Parser) advance() {
	p.pos++
}

// expect consumes and returns the current token if it has the given kind
// and, when value is non-empty, matches it case-insensitively.
func (p *Parser) expect(kind token.Kind, value string) (token.Token, error) {
	want := kind.String()
	if value != "" {
		want = "'" + value + "'"
	}

	tok, ok := p.current()
	if !ok {
		return token.Token{}, &errors.UnexpectedEOFError{Expected: want}
	}
	if tok.Kind != kind || (value != "" && !strings.EqualFold(tok.Text, value)) {
		return token.Token{}, &errors.UnexpectedTokenError{Expected: want, Got: tok}
	}
	p.advance()
	return tok, nil
}

// match probes the current token without consuming it or failing.
func (p *Parser) match(kind token.Kind, value string) bool {
	tok, ok := p.current()
	if !ok {
		return false
	}
	if tok.Kind != kind {
		return false
	}
	return value == "" || strings.EqualFold(tok.Text, value)
}

// peek probes the token after the current one.
func (p *Parser) peek(kind token.Kind, value string) bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	tok := p.tokens[p.pos+1]
	if tok.Kind != kind {
		return false
	}
	return value == "" || strings.EqualFold(tok.Text, value)
}
