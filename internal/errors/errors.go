// Package errors defines the diagnostic taxonomy of the front end.
// Every stage fails fast: the first error aborts the stage and propagates
// to the caller. There is no accumulation and no recovery.
package errors

import (
	"fmt"

	"pascals/internal/token"
)

// SyntaxError is implemented by parse-stage errors.
type SyntaxError interface {
	error
	syntaxError()
}

// SemanticError is implemented by analysis-stage errors. Code returns the
// stable diagnostic code of the concrete kind.
type SemanticError interface {
	error
	Code() string
}

// UnexpectedTokenError reports a token that does not fit the grammar.
type UnexpectedTokenError struct {
	Expected string
	Got      token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Expected %s, got %s '%s'", e.Expected, e.Got.Kind, e.Got.Text)
}

func (*UnexpectedTokenError) syntaxError() {}

// UnexpectedEOFError reports a token stream that ended too early.
type UnexpectedEOFError struct {
	Expected string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("Unexpected end of file. Expected %s", e.Expected)
}

func (*UnexpectedEOFError) syntaxError() {}

// UndeclaredIdentifierError reports a name with no visible declaration.
type UndeclaredIdentifierError struct {
	Name string
}

func (e *UndeclaredIdentifierError) Error() string {
	return fmt.Sprintf("Undeclared identifier '%s'", e.Name)
}

func (*UndeclaredIdentifierError) Code() string { return CodeUndeclaredIdentifier }

// DuplicateDeclarationError reports a name declared twice in one scope.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("Duplicate declaration of '%s'", e.Name)
}

func (*DuplicateDeclarationError) Code() string { return CodeDuplicateDeclaration }

// TypeMismatchError reports an expected/got type pair with a free-text
// context label such as "assignment" or "if condition".
type TypeMismatchError struct {
	Expected string
	Got      string
	Context  string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("Type mismatch: expected %s, got %s", e.Expected, e.Got)
	if e.Context != "" {
		msg += " in " + e.Context
	}
	return msg
}

func (*TypeMismatchError) Code() string { return CodeTypeMismatch }

// InvalidOperationError reports an operator applied to operand types it
// is not defined for.
type InvalidOperationError struct {
	Operator string
	Operands string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("Invalid operation '%s' for type %s", e.Operator, e.Operands)
}

func (*InvalidOperationError) Code() string { return CodeInvalidOperation }

// InvalidArrayIndexError reports indexing of a non-array value or a
// non-ordinal index expression.
type InvalidArrayIndexError struct {
	Message string
}

func (e *InvalidArrayIndexError) Error() string {
	return "Invalid array index: " + e.Message
}

func (*InvalidArrayIndexError) Code() string { return CodeInvalidArrayIndex }

// InvalidRecordAccessError reports a field selector that does not apply.
type InvalidRecordAccessError struct {
	Record string
	Field  string
}

func (e *InvalidRecordAccessError) Error() string {
	return fmt.Sprintf("Record '%s' has no field '%s'", e.Record, e.Field)
}

func (*InvalidRecordAccessError) Code() string { return CodeInvalidRecordAccess }

// InvalidFunctionCallError reports a callee of the wrong symbol kind.
type InvalidFunctionCallError struct {
	Message string
}

func (e *InvalidFunctionCallError) Error() string {
	return "Invalid function call: " + e.Message
}

func (*InvalidFunctionCallError) Code() string { return CodeInvalidFunctionCall }
