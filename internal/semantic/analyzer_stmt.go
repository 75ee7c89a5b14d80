package semantic

import (
	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/types"
)

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.CompoundStmt:
		for _, inner := range s.Stmts {
			if err := a.analyzeStmt(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.AssignStmt:
		return a.analyzeAssignStmt(s)
	case *ast.IfStmt:
		return a.analyzeIfStmt(s)
	case *ast.WhileStmt:
		return a.analyzeWhileStmt(s)
	case *ast.ForStmt:
		return a.analyzeForStmt(s)
	case *ast.RepeatStmt:
		return a.analyzeRepeatStmt(s)
	case *ast.CaseStmt:
		return a.analyzeCaseStmt(s)
	case *ast.CallStmt:
		return a.analyzeCallStmt(s)
	case *ast.EmptyStmt:
		return nil
	}
	return nil
}

func (a *Analyzer) analyzeAssignStmt(s *ast.AssignStmt) error {
	varType, err := a.analyzeVariable(s.Target)
	if err != nil {
		return err
	}
	exprType, err := a.analyzeExpr(s.Value)
	if err != nil {
		return err
	}

	if !varType.CompatibleWith(exprType) {
		return &errors.TypeMismatchError{
			Expected: varType.String(),
			Got:      exprType.String(),
			Context:  "assignment",
		}
	}
	return nil
}

func (a *Analyzer) analyzeIfStmt(s *ast.IfStmt) error {
	condType, err := a.analyzeExpr(s.Cond)
	if err != nil {
		return err
	}
	if !condType.Equal(types.Boolean) {
		return &errors.TypeMismatchError{
			Expected: "boolean",
			Got:      condType.String(),
			Context:  "if condition",
		}
	}

	if err := a.analyzeStmt(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		return a.analyzeStmt(s.Else)
	}
	return nil
}

func (a *Analyzer) analyzeWhileStmt(s *ast.WhileStmt) error {
	condType, err := a.analyzeExpr(s.Cond)
	if err != nil {
		return err
	}
	if !condType.Equal(types.Boolean) {
		return &errors.TypeMismatchError{
			Expected: "boolean",
			Got:      condType.String(),
			Context:  "while condition",
		}
	}
	return a.analyzeStmt(s.Body)
}

// analyzeForStmt requires ordinal bounds and declares the loop variable
// as an integer in the current scope unless it already exists there.
func (a *Analyzer) analyzeForStmt(s *ast.ForStmt) error {
	startType, err := a.analyzeExpr(s.Start)
	if err != nil {
		return err
	}
	endType, err := a.analyzeExpr(s.End)
	if err != nil {
		return err
	}

	if !startType.IsOrdinal() {
		return &errors.TypeMismatchError{
			Expected: "ordinal type",
			Got:      startType.String(),
			Context:  "for start",
		}
	}
	if !endType.IsOrdinal() {
		return &errors.TypeMismatchError{
			Expected: "ordinal type",
			Got:      endType.String(),
			Context:  "for end",
		}
	}

	if a.table.LookupCurrentScope(s.Var) < 0 {
		a.table.Enter(s.Var, VARIABLE, types.Integer)
	}

	return a.analyzeStmt(s.Body)
}

func (a *Analyzer) analyzeRepeatStmt(s *ast.RepeatStmt) error {
	for _, inner := range s.Stmts {
		if err := a.analyzeStmt(inner); err != nil {
			return err
		}
	}

	condType, err := a.analyzeExpr(s.Cond)
	if err != nil {
		return err
	}
	if !condType.Equal(types.Boolean) {
		return &errors.TypeMismatchError{
			Expected: "boolean",
			Got:      condType.String(),
			Context:  "repeat condition",
		}
	}
	return nil
}

// analyzeCaseStmt types the discriminant and every branch body. Branch
// constants are not checked against the discriminant's type.
func (a *Analyzer) analyzeCaseStmt(s *ast.CaseStmt) error {
	if _, err := a.analyzeExpr(s.Expr); err != nil {
		return err
	}

	for _, arm := range s.Arms {
		if err := a.analyzeStmt(arm.Body); err != nil {
			return err
		}
	}
	return nil
}

// analyzeCallStmt resolves the callee, which must be a procedure.
// Arguments are typed for their own errors; arity is not checked.
func (a *Analyzer) analyzeCallStmt(s *ast.CallStmt) error {
	idx := a.table.Lookup(s.Name)
	if idx < 0 {
		return &errors.UndeclaredIdentifierError{Name: s.Name}
	}

	entry := a.table.GetEntry(idx)
	if entry.Kind != PROCEDURE {
		return &errors.InvalidFunctionCallError{Message: "'" + s.Name + "' is not a procedure"}
	}

	for _, arg := range s.Args {
		if _, err := a.analyzeExpr(arg); err != nil {
			return err
		}
	}
	return nil
}
