// Package semantic type-checks a parsed program and builds its symbol
// table. Analysis is a single traversal, one handler per node variant,
// resolving children before a node's own type. The first violation
// aborts the run; there is no error accumulation.
package semantic

import (
	"strings"

	"pascals/internal/ast"
	"pascals/internal/types"
)

// Analyzer walks one program. Each analysis run owns its symbol table,
// type map, and decoration table; nothing is shared between runs, so
// concurrent analyses need one Analyzer each.
type Analyzer struct {
	table    *Table
	typeMap  map[string]*types.Type
	dec      decorations
	currFunc *types.Type
}

func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		table: NewTable(),
		typeMap: map[string]*types.Type{
			"integer": types.Integer,
			"real":    types.Real,
			"boolean": types.Boolean,
			"char":    types.Char,
			"string":  types.String,
		},
		dec: decorations{},
	}
	preloadBuiltins(a.table)
	return a
}

// Analyze checks the whole program. On success the analyzer's symbol
// table and decorations describe every declaration and expression.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	a.table.EnterAt(prog.Name, PROGRAM, types.Void, 0, 0, true)
	return a.analyzeBlock(prog.Block)
}

// Table exposes the symbol table for dumps and tests.
func (a *Analyzer) Table() *Table {
	return a.table
}

// Decoration returns the analysis result for a node, or nil when the
// node was never decorated.
func (a *Analyzer) Decoration(node ast.Node) *Decoration {
	return a.dec[node]
}

func (a *Analyzer) analyzeBlock(block *ast.Block) error {
	for _, decl := range block.Decls {
		if err := a.analyzeDecl(decl); err != nil {
			return err
		}
	}
	return a.analyzeStmt(block.Body)
}

// lookupType resolves a type name: built-in and declared names through
// the type map first, then TYPE symbols, case-insensitively for the map
// and case-sensitively for symbols.
func (a *Analyzer) lookupType(name string) (*types.Type, bool) {
	if t, ok := a.typeMap[strings.ToLower(name)]; ok {
		return t, true
	}
	if idx := a.table.Lookup(name); idx >= 0 {
		if entry := a.table.GetEntry(idx); entry.Kind == TYPE {
			return entry.Type, true
		}
	}
	return nil, false
}

// inferConstType maps a constant literal to its type. A one-character
// string constant counts as a char.
func inferConstType(value ast.Expr) *types.Type {
	switch v := value.(type) {
	case *ast.BoolLit:
		return types.Boolean
	case *ast.NumberLit:
		if v.IsReal {
			return types.Real
		}
		return types.Integer
	case *ast.CharLit:
		return types.Char
	case *ast.StringLit:
		if len(v.Value) == 1 {
			return types.Char
		}
		return types.String
	}
	return types.Integer
}

// foldConstBound folds an array bound expression to an integer. Only
// integer literals, optionally negated, fold; everything else yields 0.
func foldConstBound(expr ast.Expr) int {
	switch e := expr.(type) {
	case *ast.NumberLit:
		if !e.IsReal {
			return int(e.Int)
		}
	case *ast.UnaryExpr:
		if lit, ok := e.Operand.(*ast.NumberLit); ok && !lit.IsReal && e.Op == "-" {
			return -int(lit.Int)
		}
	}
	return 0
}
