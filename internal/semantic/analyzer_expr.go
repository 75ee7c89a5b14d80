package semantic

import (
	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/types"
)

func (a *Analyzer) analyzeExpr(expr ast.Expr) (*types.Type, error) {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return a.analyzeBinaryExpr(e)
	case *ast.UnaryExpr:
		return a.analyzeUnaryExpr(e)
	case *ast.Variable:
		return a.analyzeVariable(e)
	case *ast.NumberLit:
		typ := types.Integer
		if e.IsReal {
			typ = types.Real
		}
		a.dec.setType(e, typ)
		return typ, nil
	case *ast.StringLit:
		a.dec.setType(e, types.String)
		return types.String, nil
	case *ast.CharLit:
		a.dec.setType(e, types.Char)
		return types.Char, nil
	case *ast.BoolLit:
		a.dec.setType(e, types.Boolean)
		return types.Boolean, nil
	case *ast.CallExpr:
		return a.analyzeCallExpr(e)
	}
	return nil, &errors.InvalidOperationError{Operator: "?", Operands: "unknown"}
}

// analyzeBinaryExpr applies the operator typing rules: arithmetic wants
// numeric operands and widens to real when either side is real; div,
// mod and bagi want integers; and/or want booleans; relational
// operators want mutually compatible operands and yield boolean.
func (a *Analyzer) analyzeBinaryExpr(e *ast.BinaryExpr) (*types.Type, error) {
	leftType, err := a.analyzeExpr(e.Left)
	if err != nil {
		return nil, err
	}
	rightType, err := a.analyzeExpr(e.Right)
	if err != nil {
		return nil, err
	}

	var result *types.Type
	switch e.Op {
	case "+", "-", "*", "/":
		if !leftType.IsNumeric() || !rightType.IsNumeric() {
			return nil, &errors.InvalidOperationError{
				Operator: e.Op,
				Operands: leftType.String() + " and " + rightType.String(),
			}
		}
		if leftType.Equal(types.Real) || rightType.Equal(types.Real) {
			result = types.Real
		} else {
			result = types.Integer
		}

	case "div", "mod", "bagi":
		if !leftType.Equal(types.Integer) || !rightType.Equal(types.Integer) {
			return nil, &errors.InvalidOperationError{
				Operator: e.Op,
				Operands: leftType.String() + " and " + rightType.String(),
			}
		}
		result = types.Integer

	case "and", "or", "dan", "atau":
		if !leftType.Equal(types.Boolean) || !rightType.Equal(types.Boolean) {
			return nil, &errors.InvalidOperationError{
				Operator: e.Op,
				Operands: leftType.String() + " and " + rightType.String(),
			}
		}
		result = types.Boolean

	case "=", "<>", "<", "<=", ">", ">=":
		if !leftType.CompatibleWith(rightType) {
			return nil, &errors.TypeMismatchError{
				Expected: leftType.String(),
				Got:      rightType.String(),
				Context:  "comparison " + e.Op,
			}
		}
		result = types.Boolean

	default:
		return nil, &errors.InvalidOperationError{Operator: e.Op, Operands: "unknown"}
	}

	a.dec.setType(e, result)
	return result, nil
}

func (a *Analyzer) analyzeUnaryExpr(e *ast.UnaryExpr) (*types.Type, error) {
	operandType, err := a.analyzeExpr(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+", "-":
		if !operandType.IsNumeric() {
			return nil, &errors.InvalidOperationError{Operator: e.Op, Operands: operandType.String()}
		}
		a.dec.setType(e, operandType)
		return operandType, nil

	case "not":
		if !operandType.Equal(types.Boolean) {
			return nil, &errors.InvalidOperationError{Operator: e.Op, Operands: operandType.String()}
		}
		a.dec.setType(e, types.Boolean)
		return types.Boolean, nil
	}

	return nil, &errors.InvalidOperationError{Operator: e.Op, Operands: "unknown"}
}

// analyzeVariable resolves the base identifier and then threads the
// current type through the access chain: an index step needs an array
// and an ordinal index and narrows to the element type, a field step
// needs a record with that field and narrows to the field's type. Every
// chain link is decorated with the type it narrows to.
func (a *Analyzer) analyzeVariable(v *ast.Variable) (*types.Type, error) {
	idx := a.table.Lookup(v.Name)
	if idx < 0 {
		return nil, &errors.UndeclaredIdentifierError{Name: v.Name}
	}

	entry := a.table.GetEntry(idx)
	current := entry.Type
	a.dec.set(v, idx, current, entry.Level)

	for link := v; link != nil; link = link.Next {
		if link.Index != nil {
			if !current.IsArray() {
				return nil, &errors.InvalidArrayIndexError{Message: "'" + v.Name + "' is not an array"}
			}

			indexType, err := a.analyzeExpr(link.Index)
			if err != nil {
				return nil, err
			}
			if !indexType.IsOrdinal() {
				return nil, &errors.InvalidArrayIndexError{Message: "index must be ordinal type"}
			}
			current = current.Array.Elem
		}

		if link.Field != "" {
			if !current.IsRecord() {
				return nil, &errors.InvalidRecordAccessError{Record: v.Name, Field: link.Field}
			}
			field, ok := current.Record.Fields[link.Field]
			if !ok {
				return nil, &errors.InvalidRecordAccessError{Record: v.Name, Field: link.Field}
			}
			current = field.Type
		}

		a.dec.setType(link, current)
	}

	return current, nil
}

// analyzeCallExpr resolves the callee, which must be a function, and
// returns its declared return type. Arity is not checked.
func (a *Analyzer) analyzeCallExpr(e *ast.CallExpr) (*types.Type, error) {
	idx := a.table.Lookup(e.Name)
	if idx < 0 {
		return nil, &errors.UndeclaredIdentifierError{Name: e.Name}
	}

	entry := a.table.GetEntry(idx)
	if entry.Kind != FUNCTION {
		return nil, &errors.InvalidFunctionCallError{Message: "'" + e.Name + "' is not a function"}
	}

	for _, arg := range e.Args {
		if _, err := a.analyzeExpr(arg); err != nil {
			return nil, err
		}
	}

	a.dec.set(e, idx, entry.Type, entry.Level)
	return entry.Type, nil
}
