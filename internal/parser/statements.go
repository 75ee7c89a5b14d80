package parser

import (
	"strings"

	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/token"
)

// parseCompoundStmt handles: 'mulai' statement (';' statement)* 'selesai'
func (p *Parser) parseCompoundStmt() (*ast.CompoundStmt, error) {
	if _, err := p.expect(token.KEYWORD, "mulai"); err != nil {
		return nil, err
	}

	stmts, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KEYWORD, "selesai"); err != nil {
		return nil, err
	}
	return &ast.CompoundStmt{Stmts: stmts}, nil
}

// parseStatementList parses semicolon-separated statements. The list
// ends before whatever token no statement can start with; the caller
// consumes its own terminator.
func (p *Parser) parseStatementList() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, stmt)

	for p.match(token.SEMICOLON, "") {
		p.advance()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement dispatches on the leading token. An identifier is an
// assignment when followed by ':=', '[' or '.', otherwise a procedure
// call. Anything else in statement position is the empty statement
// (notably just before the list terminator).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.match(token.KEYWORD, "mulai"):
		return p.parseCompoundStmt()
	case p.match(token.KEYWORD, "jika"):
		return p.parseIfStmt()
	case p.match(token.KEYWORD, "selama"):
		return p.parseWhileStmt()
	case p.match(token.KEYWORD, "untuk"):
		return p.parseForStmt()
	case p.match(token.KEYWORD, "ulangi"):
		return p.parseRepeatStmt()
	case p.match(token.KEYWORD, "kasus"):
		return p.parseCaseStmt()
	case p.match(token.IDENTIFIER, ""):
		if p.peek(token.ASSIGN_OPERATOR, "") || p.peek(token.LBRACKET, "") || p.peek(token.DOT, "") {
			return p.parseAssignStmt()
		}
		return p.parseCallStmt()
	default:
		return &ast.EmptyStmt{}, nil
	}
}

// parseAssignStmt handles: variable ':=' expression
func (p *Parser) parseAssignStmt() (*ast.AssignStmt, error) {
	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN_OPERATOR, ""); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Target: target, Value: value}, nil
}

// parseCallStmt handles: IDENT ('(' arguments ')')?
func (p *Parser) parseCallStmt() (*ast.CallStmt, error) {
	name, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.CallStmt{Name: name.Text, Args: args}, nil
}

// parseArguments handles an optional parenthesized argument list.
func (p *Parser) parseArguments() ([]ast.Expr, error) {
	if !p.match(token.LPARENTHESIS, "") {
		return nil, nil
	}
	p.advance()

	if p.match(token.RPARENTHESIS, "") {
		p.advance()
		return nil, nil
	}

	var args []ast.Expr
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.match(token.COMMA, "") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.RPARENTHESIS, ""); err != nil {
		return nil, err
	}
	return args, nil
}

// parseIfStmt handles: 'jika' expression 'maka' statement ('selain-itu' statement)?
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	if _, err := p.expect(token.KEYWORD, "jika"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "maka"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.match(token.KEYWORD, "selain-itu") {
		p.advance()
		elseStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt
	}
	return stmt, nil
}

// parseWhileStmt handles: 'selama' expression 'lakukan' statement
func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	if _, err := p.expect(token.KEYWORD, "selama"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "lakukan"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// parseForStmt handles:
// 'untuk' IDENT ':=' expression ('ke'|'turun-ke') expression 'lakukan' statement
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	if _, err := p.expect(token.KEYWORD, "untuk"); err != nil {
		return nil, err
	}
	loopVar, err := p.expect(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN_OPERATOR, ""); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	direction := "to"
	switch {
	case p.match(token.KEYWORD, "ke"):
		p.advance()
	case p.match(token.KEYWORD, "turun-ke"):
		p.advance()
		direction = "downto"
	default:
		tok, ok := p.current()
		if !ok {
			return nil, &errors.UnexpectedEOFError{Expected: "'ke' or 'turun-ke'"}
		}
		return nil, &errors.UnexpectedTokenError{Expected: "'ke' or 'turun-ke'", Got: tok}
	}

	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "lakukan"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		Var:       loopVar.Text,
		Start:     start,
		End:       end,
		Direction: direction,
		Body:      body,
	}, nil
}

// parseRepeatStmt handles: 'ulangi' statement (';' statement)* 'sampai' expression
func (p *Parser) parseRepeatStmt() (*ast.RepeatStmt, error) {
	if _, err := p.expect(token.KEYWORD, "ulangi"); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "sampai"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatStmt{Stmts: stmts, Cond: cond}, nil
}

// parseCaseStmt handles:
// 'kasus' expression 'dari' arm (';' arm)* ';'? 'selesai'
// arm: constant (',' constant)* ':' statement
func (p *Parser) parseCaseStmt() (*ast.CaseStmt, error) {
	if _, err := p.expect(token.KEYWORD, "kasus"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KEYWORD, "dari"); err != nil {
		return nil, err
	}

	stmt := &ast.CaseStmt{Expr: expr}
	for !p.match(token.KEYWORD, "selesai") {
		arm, err := p.parseCaseArm()
		if err != nil {
			return nil, err
		}
		stmt.Arms = append(stmt.Arms, arm)

		if p.match(token.SEMICOLON, "") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.KEYWORD, "selesai"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseCaseArm() (ast.CaseArm, error) {
	var arm ast.CaseArm
	for {
		c, err := p.parseConstant()
		if err != nil {
			return arm, err
		}
		arm.Constants = append(arm.Constants, c)

		if p.match(token.COMMA, "") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.COLON, ""); err != nil {
		return arm, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return arm, err
	}
	arm.Body = body
	return arm, nil
}

func boolFromText(text string) (bool, bool) {
	switch strings.ToLower(text) {
	case "benar", "true":
		return true, true
	case "salah", "false":
		return false, true
	}
	return false, false
}
