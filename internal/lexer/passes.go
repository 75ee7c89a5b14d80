package lexer

import (
	"strings"

	"pascals/internal/token"
)

// Keywords after which a minus sign starts an expression rather than
// continuing one, so a following number literal is negative.
var unaryContextKeywords = map[string]bool{
	"then":       true,
	"else":       true,
	"do":         true,
	"of":         true,
	"to":         true,
	"downto":     true,
	"maka":       true,
	"selain-itu": true,
	"lakukan":    true,
	"dari":       true,
	"ke":         true,
	"turun-ke":   true,
}

// Token kinds after which a minus sign is unary.
var unaryContextKinds = map[token.Kind]bool{
	token.ASSIGN_OPERATOR:     true,
	token.RELATIONAL_OPERATOR: true,
	token.ARITHMETIC_OPERATOR: true,
	token.LOGICAL_OPERATOR:    true,
	token.LPARENTHESIS:        true,
	token.LBRACKET:            true,
	token.COMMA:               true,
	token.COLON:               true,
	token.RANGE_OPERATOR:      true,
}

func isTrivia(k token.Kind) bool {
	return k == token.WHITESPACE || k == token.COMMENT
}

// MergeNegativeNumbers folds a unary-position "-" operator into the
// NUMBER token that follows it (skipping whitespace and comments). A
// minus after an identifier, literal, or closing bracket is binary
// subtraction and stays untouched.
func MergeNegativeNumbers(tokens []token.Token) []token.Token {
	result := make([]token.Token, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		if isTrivia(tokens[i].Kind) {
			result = append(result, tokens[i])
			i++
			continue
		}

		if tokens[i].Kind == token.ARITHMETIC_OPERATOR && tokens[i].Text == "-" {
			j := i + 1
			for j < len(tokens) && isTrivia(tokens[j].Kind) {
				j++
			}

			if j < len(tokens) && tokens[j].Kind == token.NUMBER && minusIsUnary(result) {
				result = append(result, token.Token{
					Kind:  token.NUMBER,
					Text:  "-" + tokens[j].Text,
					Start: tokens[i].Start,
					End:   tokens[j].End,
				})
				i = j + 1
				continue
			}
		}

		result = append(result, tokens[i])
		i++
	}

	return result
}

// minusIsUnary inspects the last meaningful token already emitted.
func minusIsUnary(emitted []token.Token) bool {
	prev := len(emitted) - 1
	for prev >= 0 && isTrivia(emitted[prev].Kind) {
		prev--
	}
	if prev < 0 {
		// Minus at the beginning of the stream.
		return true
	}

	t := emitted[prev]
	if unaryContextKinds[t.Kind] {
		return true
	}
	if t.Kind == token.KEYWORD && unaryContextKeywords[strings.ToLower(t.Text)] {
		return true
	}
	return false
}

// FixCharLiterals reclassifies STRING_LITERAL tokens whose raw text is
// exactly three characters (quote, char, quote) as CHAR_LITERAL.
func FixCharLiterals(tokens []token.Token) []token.Token {
	result := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.STRING_LITERAL && len(t.Text) == 3 {
			t.Kind = token.CHAR_LITERAL
		}
		result = append(result, t)
	}
	return result
}

// MergeHyphenatedKeywords re-joins IDENTIFIER/KEYWORD "-" IDENTIFIER/KEYWORD
// runs whose joined lowercase spelling is a recognized compound keyword
// (the scanner cannot produce them in one piece because "-" ends an
// identifier match).
func MergeHyphenatedKeywords(tokens []token.Token, hyphenated map[string]bool) []token.Token {
	result := make([]token.Token, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		if i+2 < len(tokens) {
			first, middle, last := tokens[i], tokens[i+1], tokens[i+2]

			if isWordToken(first.Kind) &&
				middle.Kind == token.ARITHMETIC_OPERATOR && middle.Text == "-" &&
				isWordToken(last.Kind) {

				joined := first.Text + "-" + last.Text
				if hyphenated[strings.ToLower(joined)] {
					result = append(result, token.Token{
						Kind:  token.KEYWORD,
						Text:  joined,
						Start: first.Start,
						End:   last.End,
					})
					i += 3
					continue
				}
			}
		}

		result = append(result, tokens[i])
		i++
	}

	return result
}

func isWordToken(k token.Kind) bool {
	return k == token.IDENTIFIER || k == token.KEYWORD
}
