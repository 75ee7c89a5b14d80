// Package printer renders analysis artifacts for people: token listings,
// syntax trees with optional semantic decorations, and symbol table
// dumps. Nothing here is consumed by the pipeline itself.
package printer

import (
	"encoding/json"
	"fmt"
	"strings"

	"pascals/internal/ast"
	"pascals/internal/semantic"
)

// DecorationLookup resolves a node to its analysis result, or nil when
// the node carries none. A nil lookup prints a plain tree.
type DecorationLookup func(ast.Node) *semantic.Decoration

// FormatTree renders the tree without decorations.
func FormatTree(root ast.Node) string {
	return FormatDecoratedTree(root, nil)
}

// FormatDecoratedTree renders one node per line with box-drawing
// connectors; nodes with a decoration get it appended after an arrow.
func FormatDecoratedTree(root ast.Node, lookup DecorationLookup) string {
	var lines []string
	renderItem(buildItem(root, lookup), "", true, true, &lines)
	return strings.Join(lines, "\n")
}

// FormatJSON renders the tree's structural dictionary as indented JSON.
func FormatJSON(root ast.Node) (string, error) {
	data, err := json.MarshalIndent(root.ToDict(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// item is the intermediate display tree: grouping labels such as
// "Declarations" have no AST node of their own.
type item struct {
	label string
	kids  []item
}

func renderItem(it item, prefix string, isLast, isRoot bool, lines *[]string) {
	if isRoot {
		*lines = append(*lines, it.label)
	} else {
		connector := "├─ "
		if isLast {
			connector = "└─ "
		}
		*lines = append(*lines, prefix+connector+it.label)
	}

	childPrefix := ""
	if !isRoot {
		if isLast {
			childPrefix = prefix + "   "
		} else {
			childPrefix = prefix + "│  "
		}
	}

	for i, kid := range it.kids {
		renderItem(kid, childPrefix, i == len(it.kids)-1, false, lines)
	}
}

func buildItem(node ast.Node, lookup DecorationLookup) item {
	return item{
		label: nodeLabel(node) + decorationSuffix(node, lookup),
		kids:  childItems(node, lookup),
	}
}

func decorationSuffix(node ast.Node, lookup DecorationLookup) string {
	if lookup == nil {
		return ""
	}
	dec := lookup(node)
	if dec == nil {
		return ""
	}

	var parts []string
	if dec.TabIndex >= 0 {
		parts = append(parts, fmt.Sprintf("tab_index:%d", dec.TabIndex))
	}
	if dec.Type != nil {
		parts = append(parts, "type:"+dec.Type.String())
	}
	// Level only means something for resolved symbols.
	if dec.TabIndex >= 0 {
		parts = append(parts, fmt.Sprintf("lev:%d", dec.Level))
	}
	if len(parts) == 0 {
		return ""
	}
	return " → " + strings.Join(parts, ", ")
}

func nodeLabel(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return fmt.Sprintf("ProgramNode(name: '%s')", n.Name)
	case *ast.Block:
		return "Block"
	case *ast.VarDecl:
		return "VarDecl(" + quotedList(n.Names) + ")"
	case *ast.ConstDecl:
		return fmt.Sprintf("ConstDecl('%s')", n.Name)
	case *ast.TypeDecl:
		return fmt.Sprintf("TypeDecl('%s')", n.Name)
	case *ast.ProcDecl:
		return fmt.Sprintf("ProcDecl('%s')", n.Name)
	case *ast.FuncDecl:
		return fmt.Sprintf("FuncDecl('%s')", n.Name)
	case *ast.Param:
		return "Param(" + quotedList(n.Names) + ")"
	case *ast.CompoundStmt:
		return "CompoundStmt"
	case *ast.AssignStmt:
		return "Assign"
	case *ast.IfStmt:
		return "IfStmt"
	case *ast.WhileStmt:
		return "WhileStmt"
	case *ast.ForStmt:
		return "ForStmt"
	case *ast.RepeatStmt:
		return "RepeatStmt"
	case *ast.CaseStmt:
		return "CaseStmt"
	case *ast.CallStmt:
		return fmt.Sprintf("ProcCall('%s')", n.Name)
	case *ast.CallExpr:
		return fmt.Sprintf("FuncCall('%s')", n.Name)
	case *ast.BinaryExpr:
		return fmt.Sprintf("BinOp '%s'", n.Op)
	case *ast.UnaryExpr:
		return fmt.Sprintf("UnaryOp '%s'", n.Op)
	case *ast.Variable:
		name := n.Name
		if name == "" {
			name = "<access>"
		}
		if n.Index != nil {
			return fmt.Sprintf("VarAccess('%s'[])", name)
		}
		if n.Field != "" {
			return fmt.Sprintf("VarAccess('.%s')", n.Field)
		}
		return fmt.Sprintf("Variable('%s')", name)
	case *ast.NumberLit:
		if n.IsReal {
			return fmt.Sprintf("Number(%g)", n.Real)
		}
		return fmt.Sprintf("Number(%d)", n.Int)
	case *ast.StringLit:
		return fmt.Sprintf("String('%s')", n.Value)
	case *ast.CharLit:
		return fmt.Sprintf("Char('%s')", n.Value)
	case *ast.BoolLit:
		return fmt.Sprintf("Boolean(%t)", n.Value)
	case *ast.EmptyStmt:
		return "EmptyStmt"
	case *ast.SimpleType:
		return fmt.Sprintf("SimpleType('%s')", n.Name)
	case *ast.ArrayType:
		return "ArrayType"
	case *ast.RecordType:
		return "RecordType"
	}
	return fmt.Sprintf("%T", node)
}

func childItems(node ast.Node, lookup DecorationLookup) []item {
	var kids []item
	add := func(n ast.Node) {
		if n != nil {
			kids = append(kids, buildItem(n, lookup))
		}
	}

	switch n := node.(type) {
	case *ast.Program:
		add(n.Block)
	case *ast.Block:
		if len(n.Decls) > 0 {
			group := item{label: "Declarations"}
			for _, d := range n.Decls {
				group.kids = append(group.kids, buildItem(d, lookup))
			}
			kids = append(kids, group)
		}
		add(n.Body)
	case *ast.TypeDecl:
		add(n.Type)
	case *ast.ProcDecl:
		for _, p := range n.Params {
			add(p)
		}
		add(n.Block)
	case *ast.FuncDecl:
		for _, p := range n.Params {
			add(p)
		}
		add(n.Result)
		add(n.Block)
	case *ast.CompoundStmt:
		for _, s := range n.Stmts {
			add(s)
		}
	case *ast.AssignStmt:
		add(n.Target)
		add(n.Value)
	case *ast.IfStmt:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ast.WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *ast.ForStmt:
		add(n.Start)
		add(n.End)
		add(n.Body)
	case *ast.RepeatStmt:
		for _, s := range n.Stmts {
			add(s)
		}
		add(n.Cond)
	case *ast.CaseStmt:
		add(n.Expr)
		for _, arm := range n.Arms {
			add(arm.Body)
		}
	case *ast.CallStmt:
		for _, a := range n.Args {
			add(a)
		}
	case *ast.CallExpr:
		for _, a := range n.Args {
			add(a)
		}
	case *ast.BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *ast.UnaryExpr:
		add(n.Operand)
	case *ast.Variable:
		if n.Index != nil {
			add(n.Index)
		}
		if n.Next != nil {
			add(n.Next)
		}
	case *ast.ArrayType:
		add(n.Elem)
	case *ast.RecordType:
		for _, f := range n.Fields {
			add(f)
		}
	}
	return kids
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ",")
}
