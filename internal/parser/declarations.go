package parser

import (
	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/token"
)

// parseProgram handles: 'program' IDENT ';' block '.'
func (p *Parser) parseProgram() (*ast.Program, error) {
	if _, err := p.expect(token.KEYWORD, "program"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ""); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.DOT, ""); err != nil {
		return nil, err
	}

	return &ast.Program{Name: name.Text, Block: block}, nil
}

// parseBlock handles the declaration part, in any order and repetition,
// followed by the compound statement.
func (p *Parser) parseBlock() (*ast.Block, error) {
	var decls []ast.Decl

	for {
		switch {
		case p.match(token.KEYWORD, "konstanta"):
			p.advance()
			group, err := p.parseConstSection()
			if err != nil {
				return nil, err
			}
			decls = append(decls, group...)

		case p.match(token.KEYWORD, "tipe"):
			p.advance()
			group, err := p.parseTypeSection()
			if err != nil {
				return nil, err
			}
			decls = append(decls, group...)

		case p.match(token.KEYWORD, "variabel"):
			p.advance()
			group, err := p.parseVarSection()
			if err != nil {
				return nil, err
			}
			decls = append(decls, group...)

		case p.match(token.KEYWORD, "prosedur"):
			decl, err := p.parseProcDecl()
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)

		case p.match(token.KEYWORD, "fungsi"):
			decl, err := p.parseFuncDecl()
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)

		default:
			body, err := p.parseCompoundStmt()
			if err != nil {
				return nil, err
			}
			return &ast.Block{Decls: decls, Body: body}, nil
		}
	}
}

// parseConstSection handles: (IDENT '=' constant ';')+
func (p *Parser) parseConstSection() ([]ast.Decl, error) {
	var decls []ast.Decl
	for {
		name, err := p.expect(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RELATIONAL_OPERATOR, "="); err != nil {
			return nil, err
		}
		value, err := p.parseConstant()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ""); err != nil {
			return nil, err
		}
		decls = append(decls, &ast.ConstDecl{Name: name.Text, Value: value})

		if !p.match(token.IDENTIFIER, "") {
			return decls, nil
		}
	}
}

// parseTypeSection handles: (IDENT '=' type_spec ';')+
func (p *Parser) parseTypeSection() ([]ast.Decl, error) {
	var decls []ast.Decl
	for {
		name, err := p.expect(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RELATIONAL_OPERATOR, "="); err != nil {
			return nil, err
		}
		spec, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ""); err != nil {
			return nil, err
		}
		decls = append(decls, &ast.TypeDecl{Name: name.Text, Type: spec})

		if !p.match(token.IDENTIFIER, "") {
			return decls, nil
		}
	}
}

// parseVarSection handles: (IDENT (',' IDENT)* ':' type_spec ';')+
func (p *Parser) parseVarSection() ([]ast.Decl, error) {
	var decls []ast.Decl
	for {
		group, err := p.parseVarGroup()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ""); err != nil {
			return nil, err
		}
		decls = append(decls, group)

		if !p.match(token.IDENTIFIER, "") {
			return decls, nil
		}
	}
}

// parseVarGroup handles one identifier list with its type, shared by var
// sections and record fields.
func (p *Parser) parseVarGroup() (*ast.VarDecl, error) {
	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON, ""); err != nil {
		return nil, err
	}
	spec, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Names: names, Type: spec}, nil
}

func (p *Parser) parseIdentList() ([]string, error) {
	first, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	names := []string{first.Text}
	for p.match(token.COMMA, "") {
		p.advance()
		next, err := p.expect(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		names = append(names, next.Text)
	}
	return names, nil
}

// parseProcDecl handles: 'prosedur' IDENT params? ';' block ';'
func (p *Parser) parseProcDecl() (*ast.ProcDecl, error) {
	if _, err := p.expect(token.KEYWORD, "prosedur"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ""); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ""); err != nil {
		return nil, err
	}
	return &ast.ProcDecl{Name: name.Text, Params: params, Block: block}, nil
}

// parseFuncDecl handles: 'fungsi' IDENT params? ':' type_spec ';' block ';'
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	if _, err := p.expect(token.KEYWORD, "fungsi"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON, ""); err != nil {
		return nil, err
	}
	result, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ""); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ""); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: name.Text, Params: params, Result: result, Block: block}, nil
}

// parseParams handles an optional parenthesized parameter-group list:
// '(' ident_list ':' type_spec (';' ident_list ':' type_spec)* ')'
func (p *Parser) parseParams() ([]*ast.Param, error) {
	if !p.match(token.LPARENTHESIS, "") {
		return nil, nil
	}
	p.advance()

	var params []*ast.Param
	for {
		names, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON, ""); err != nil {
			return nil, err
		}
		spec, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Param{Names: names, Type: spec})

		if p.match(token.SEMICOLON, "") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.RPARENTHESIS, ""); err != nil {
		return nil, err
	}
	return params, nil
}

// parseTypeSpec handles: simple_type | array_type | record_type.
func (p *Parser) parseTypeSpec() (ast.TypeSpec, error) {
	switch {
	case p.match(token.KEYWORD, "larik"):
		return p.parseArrayType()
	case p.match(token.KEYWORD, "rekaman"):
		return p.parseRecordType()
	default:
		name, err := p.expect(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		return &ast.SimpleType{Name: name.Text}, nil
	}
}

// parseArrayType handles:
// 'larik' '[' expression '..' expression ']' 'dari' type_spec
// 'larik' '[' IDENT ']' 'dari' type_spec
func (p *Parser) parseArrayType() (*ast.ArrayType, error) {
	if _, err := p.expect(token.KEYWORD, "larik"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET, ""); err != nil {
		return nil, err
	}

	arr := &ast.ArrayType{}
	if p.match(token.IDENTIFIER, "") && p.peek(token.RBRACKET, "") {
		name, _ := p.current()
		p.advance()
		arr.Index = &ast.SimpleType{Name: name.Text}
	} else {
		low, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RANGE_OPERATOR, ""); err != nil {
			return nil, err
		}
		high, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.Low, arr.High = low, high
	}

	if _, err := p.expect(token.RBRACKET, ""); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "dari"); err != nil {
		return nil, err
	}

	elem, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	arr.Elem = elem
	return arr, nil
}

// parseRecordType handles: 'rekaman' field_group (';' field_group)* ';'? 'selesai'
func (p *Parser) parseRecordType() (*ast.RecordType, error) {
	if _, err := p.expect(token.KEYWORD, "rekaman"); err != nil {
		return nil, err
	}

	var fields []*ast.VarDecl
	for p.match(token.IDENTIFIER, "") {
		group, err := p.parseVarGroup()
		if err != nil {
			return nil, err
		}
		fields = append(fields, group)

		if p.match(token.SEMICOLON, "") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.KEYWORD, "selesai"); err != nil {
		return nil, err
	}
	return &ast.RecordType{Fields: fields}, nil
}

// parseConstant handles the literal forms allowed after '=' in constant
// declarations and in case-arm labels.
func (p *Parser) parseConstant() (ast.Expr, error) {
	tok, ok := p.current()
	if !ok {
		return nil, &errors.UnexpectedEOFError{Expected: "constant"}
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
	}
	return nil, &errors.UnexpectedTokenError{Expected: "constant", Got: tok}
}
