package parser

import (
	"strconv"
	"strings"

	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/token"
)

// Expressions follow three precedence tiers: relational (lowest,
// non-associative, at most one operator), additive with logical-or, and
// multiplicative with logical-and, bottoming out in factors.

// parseExpression handles: additive (rel_op additive)?
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	if p.match(token.RELATIONAL_OPERATOR, "") {
		op, _ := p.current()
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op.Text, Right: right}, nil
	}
	return left, nil
}

// parseAdditive handles: term (('+'|'-'|or) term)*, left-associative.
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return left, nil
		}

		isAdd := tok.Kind == token.ARITHMETIC_OPERATOR && (tok.Text == "+" || tok.Text == "-")
		isOr := tok.Kind == token.LOGICAL_OPERATOR && isOrSpelling(tok.Text)
		if !isAdd && !isOr {
			return left, nil
		}

		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: strings.ToLower(tok.Text), Right: right}
	}
}

// parseTerm handles: factor (('*'|'/'|div|mod|bagi|and) factor)*,
// left-associative.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return left, nil
		}

		isMul := tok.Kind == token.ARITHMETIC_OPERATOR &&
			(tok.Text == "*" || tok.Text == "/" || isWordDivSpelling(tok.Text))
		isAnd := tok.Kind == token.LOGICAL_OPERATOR && isAndSpelling(tok.Text)
		if !isMul && !isAnd {
			return left, nil
		}

		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: strings.ToLower(tok.Text), Right: right}
	}
}

// parseFactor handles literals, parenthesized sub-expressions, unary
// operators, variables, and function calls.
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok, ok := p.current()
	if !ok {
		return nil, &errors.UnexpectedEOFError{Expected: "expression"}
	}

	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return numberFromText(tok.Text), nil

	case token.STRING_LITERAL:
		p.advance()
		return &ast.StringLit{Value: unquote(tok.Text)}, nil

	case token.CHAR_LITERAL:
		p.advance()
		return &ast.CharLit{Value: unquote(tok.Text)}, nil

	case token.KEYWORD:
		if value, ok := boolFromText(tok.Text); ok {
			p.advance()
			return &ast.BoolLit{Value: value}, nil
		}

	case token.LOGICAL_OPERATOR:
		if isNotSpelling(tok.Text) {
			p.advance()
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpr{Op: "not", Operand: operand}, nil
		}

	case token.ARITHMETIC_OPERATOR:
		if tok.Text == "+" || tok.Text == "-" {
			p.advance()
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpr{Op: tok.Text, Operand: operand}, nil
		}

	case token.LPARENTHESIS:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPARENTHESIS, ""); err != nil {
			return nil, err
		}
		return expr, nil

	case token.IDENTIFIER:
		if p.peek(token.LPARENTHESIS, "") {
			name, _ := p.current()
			p.advance()
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			return &ast.CallExpr{Name: name.Text, Args: args}, nil
		}
		return p.parseVariable()
	}

	return nil, &errors.UnexpectedTokenError{Expected: "expression", Got: tok}
}

// parseVariable handles a base identifier followed by any run of '[expr]'
// index and '.field' selector suffixes. Each suffix lands on the current
// chain link when that link is still bare, otherwise it opens a new link,
// so a[i].f becomes two links while a.f stays one.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	name, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}

	base := &ast.Variable{Name: name.Text}
	current := base

	for {
		switch {
		case p.match(token.LBRACKET, ""):
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET, ""); err != nil {
				return nil, err
			}
			current = attachAccess(current, index, "")

		case p.match(token.DOT, ""):
			// A dot not followed by an identifier is the program
			// terminator, not a field selector.
			if !p.peek(token.IDENTIFIER, "") {
				return base, nil
			}
			p.advance()
			field, err := p.expect(token.IDENTIFIER, "")
			if err != nil {
				return nil, err
			}
			current = attachAccess(current, nil, field.Text)

		default:
			return base, nil
		}
	}
}

// attachAccess puts an index or field step on the link if it is still
// unused, otherwise appends a fresh link to the chain.
func attachAccess(link *ast.Variable, index ast.Expr, field string) *ast.Variable {
	if link.Index == nil && link.Field == "" {
		link.Index = index
		link.Field = field
		return link
	}
	next := &ast.Variable{Index: index, Field: field}
	link.Next = next
	return next
}

func numberFromText(text string) *ast.NumberLit {
	if strings.Contains(text, ".") {
		value, _ := strconv.ParseFloat(text, 64)
		return &ast.NumberLit{Raw: text, IsReal: true, Real: value}
	}
	value, _ := strconv.ParseInt(text, 10, 64)
	return &ast.NumberLit{Raw: text, Int: value}
}

func unquote(text string) string {
	return strings.Trim(text, "'")
}

func isOrSpelling(text string) bool {
	lower := strings.ToLower(text)
	return lower == "or" || lower == "atau"
}

func isAndSpelling(text string) bool {
	lower := strings.ToLower(text)
	return lower == "and" || lower == "dan"
}

func isNotSpelling(text string) bool {
	lower := strings.ToLower(text)
	return lower == "not" || lower == "tidak"
}

func isWordDivSpelling(text string) bool {
	lower := strings.ToLower(text)
	return lower == "div" || lower == "mod" || lower == "bagi"
}
