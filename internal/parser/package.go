package parser

import (
	"pascals/internal/ast"
	"pascals/internal/lexer"
	"pascals/internal/token"
)

// ParseSource lexes and parses a complete source text with the default
// language rules.
func ParseSource(source string) (*ast.Program, error) {
	lx, err := lexer.NewDefault()
	if err != nil {
		return nil, err
	}
	tokens := lx.Tokenize(source)
	return ParseTokens(tokens)
}

// ParseTokens parses an already lexed token stream. Whitespace and
// comment tokens are dropped here so the grammar never has to mention
// them.
func ParseTokens(tokens []token.Token) (*ast.Program, error) {
	return New(Filter(tokens)).Parse()
}

// Filter strips WHITESPACE and COMMENT tokens.
func Filter(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.WHITESPACE || t.Kind == token.COMMENT {
			continue
		}
		out = append(out, t)
	}
	return out
}
