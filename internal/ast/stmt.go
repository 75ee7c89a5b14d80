package ast

// CompoundStmt is a begin/end statement list.
type CompoundStmt struct {
	Stmts []Stmt
}

// AssignStmt assigns an expression to a variable access.
type AssignStmt struct {
	Target *Variable
	Value  Expr
}

// IfStmt branches on a boolean condition; Else may be nil.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt repeats its body while the condition holds.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// ForStmt counts a loop variable between two bounds. Direction is "to"
// or "downto".
type ForStmt struct {
	Var       string
	Start     Expr
	End       Expr
	Direction string
	Body      Stmt
}

// RepeatStmt runs its statements at least once, stopping when the
// condition becomes true.
type RepeatStmt struct {
	Stmts []Stmt
	Cond  Expr
}

// CaseStmt selects one arm by the discriminant's value.
type CaseStmt struct {
	Expr Expr
	Arms []CaseArm
}

// CaseArm pairs a constant list with the statement it guards.
type CaseArm struct {
	Constants []Expr
	Body      Stmt
}

// CallStmt invokes a procedure in statement position.
type CallStmt struct {
	Name string
	Args []Expr
}

// EmptyStmt is the statement between two adjacent semicolons.
type EmptyStmt struct{}

func (*CompoundStmt) astNode() {}
func (*AssignStmt) astNode()   {}
func (*IfStmt) astNode()       {}
func (*WhileStmt) astNode()    {}
func (*ForStmt) astNode()      {}
func (*RepeatStmt) astNode()   {}
func (*CaseStmt) astNode()     {}
func (*CallStmt) astNode()     {}
func (*EmptyStmt) astNode()    {}

func (*CompoundStmt) stmtNode() {}
func (*AssignStmt) stmtNode()   {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*RepeatStmt) stmtNode()   {}
func (*CaseStmt) stmtNode()     {}
func (*CallStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()    {}

func (s *CompoundStmt) ToDict() map[string]any {
	return map[string]any{
		"type":       "CompoundStatement",
		"statements": stmtDicts(s.Stmts),
	}
}

func (s *AssignStmt) ToDict() map[string]any {
	return map[string]any{
		"type":       "AssignmentStatement",
		"variable":   s.Target.ToDict(),
		"expression": s.Value.ToDict(),
	}
}

func (s *IfStmt) ToDict() map[string]any {
	d := map[string]any{
		"type":           "IfStatement",
		"condition":      s.Cond.ToDict(),
		"then_statement": s.Then.ToDict(),
	}
	if s.Else != nil {
		d["else_statement"] = s.Else.ToDict()
	}
	return d
}

func (s *WhileStmt) ToDict() map[string]any {
	return map[string]any{
		"type":      "WhileStatement",
		"condition": s.Cond.ToDict(),
		"body":      s.Body.ToDict(),
	}
}

func (s *ForStmt) ToDict() map[string]any {
	return map[string]any{
		"type":       "ForStatement",
		"variable":   s.Var,
		"start_expr": s.Start.ToDict(),
		"end_expr":   s.End.ToDict(),
		"direction":  s.Direction,
		"body":       s.Body.ToDict(),
	}
}

func (s *RepeatStmt) ToDict() map[string]any {
	return map[string]any{
		"type":       "RepeatStatement",
		"statements": stmtDicts(s.Stmts),
		"condition":  s.Cond.ToDict(),
	}
}

func (s *CaseStmt) ToDict() map[string]any {
	arms := make([]any, 0, len(s.Arms))
	for _, arm := range s.Arms {
		constants := make([]any, 0, len(arm.Constants))
		for _, c := range arm.Constants {
			constants = append(constants, c.ToDict())
		}
		arms = append(arms, map[string]any{
			"constants": constants,
			"statement": arm.Body.ToDict(),
		})
	}
	return map[string]any{
		"type":       "CaseStatement",
		"expression": s.Expr.ToDict(),
		"cases":      arms,
	}
}

func (s *CallStmt) ToDict() map[string]any {
	return map[string]any{
		"type":      "ProcedureCall",
		"name":      s.Name,
		"arguments": exprDicts(s.Args),
	}
}

func (*EmptyStmt) ToDict() map[string]any {
	return map[string]any{"type": "EmptyStatement"}
}

func stmtDicts(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s.ToDict())
	}
	return out
}

func exprDicts(exprs []Expr) []any {
	out := make([]any, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, e.ToDict())
	}
	return out
}
