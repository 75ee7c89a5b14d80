package ast

import (
	"testing"
)

func sampleTree() *Program {
	return &Program{
		Name: "p",
		Block: &Block{
			Decls: []Decl{
				&VarDecl{Names: []string{"x"}, Type: &SimpleType{Name: "integer"}},
			},
			Body: &CompoundStmt{Stmts: []Stmt{
				&AssignStmt{
					Target: &Variable{Name: "x"},
					Value: &BinaryExpr{
						Left:  &NumberLit{Raw: "1", Int: 1},
						Op:    "+",
						Right: &NumberLit{Raw: "2", Int: 2},
					},
				},
			}},
		},
	}
}

func TestInspectVisitsEveryNode(t *testing.T) {
	var count int
	var numbers []int64
	Inspect(sampleTree(), func(n Node) bool {
		count++
		if lit, ok := n.(*NumberLit); ok {
			numbers = append(numbers, lit.Int)
		}
		return true
	})

	// Program, Block, VarDecl, SimpleType, CompoundStmt, AssignStmt,
	// Variable, BinaryExpr and two literals.
	if count != 10 {
		t.Errorf("expected 10 nodes, got %d", count)
	}
	if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
		t.Errorf("expected literals [1 2], got %v", numbers)
	}
}

func TestInspectPrunesChildren(t *testing.T) {
	var sawLiteral bool
	Inspect(sampleTree(), func(n Node) bool {
		switch n.(type) {
		case *BinaryExpr:
			return false
		case *NumberLit:
			sawLiteral = true
		}
		return true
	})

	if sawLiteral {
		t.Error("literals under a pruned node must not be visited")
	}
}

func TestToDictStableFieldNames(t *testing.T) {
	d := sampleTree().ToDict()
	if d["type"] != "Program" || d["name"] != "p" {
		t.Fatalf("unexpected program dict: %v", d)
	}

	block := d["block"].(map[string]any)
	decls := block["declarations"].([]any)
	if len(decls) != 1 {
		t.Fatalf("expected one declaration, got %v", decls)
	}
	varDecl := decls[0].(map[string]any)
	if varDecl["type"] != "VarDeclaration" {
		t.Errorf("unexpected declaration dict: %v", varDecl)
	}

	stmts := block["compound_statement"].(map[string]any)["statements"].([]any)
	assign := stmts[0].(map[string]any)
	if assign["type"] != "AssignmentStatement" {
		t.Errorf("unexpected statement dict: %v", assign)
	}
	binop := assign["expression"].(map[string]any)
	if binop["operator"] != "+" {
		t.Errorf("unexpected operator: %v", binop)
	}
}

func TestVariableChainDict(t *testing.T) {
	v := &Variable{
		Name:  "a",
		Index: &Variable{Name: "i"},
		Next:  &Variable{Field: "f"},
	}

	d := v.ToDict()
	if d["name"] != "a" {
		t.Fatalf("unexpected dict: %v", d)
	}
	next := d["next_access"].(map[string]any)
	if next["field"] != "f" {
		t.Errorf("unexpected chain dict: %v", next)
	}
	if _, hasIndex := next["index"]; hasIndex {
		t.Error("field link must not carry an index")
	}
}
