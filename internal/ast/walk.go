package ast

import "fmt"

// Visitor is the go/ast-style traversal hook: Visit is called for every
// node; returning nil prunes the node's children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree in depth-first order, calling v.Visit for each
// node. The type switch is exhaustive over the closed node set; a variant
// missing here is a programming error.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		Walk(v, n.Block)

	case *Block:
		for _, d := range n.Decls {
			Walk(v, d)
		}
		Walk(v, n.Body)

	case *VarDecl:
		Walk(v, n.Type)

	case *ConstDecl:
		Walk(v, n.Value)

	case *TypeDecl:
		Walk(v, n.Type)

	case *ProcDecl:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Block)

	case *FuncDecl:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Result)
		Walk(v, n.Block)

	case *Param:
		Walk(v, n.Type)

	case *SimpleType:
		// leaf

	case *ArrayType:
		if n.Index != nil {
			Walk(v, n.Index)
		} else {
			Walk(v, n.Low)
			Walk(v, n.High)
		}
		Walk(v, n.Elem)

	case *RecordType:
		for _, f := range n.Fields {
			Walk(v, f)
		}

	case *CompoundStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}

	case *AssignStmt:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)

	case *ForStmt:
		Walk(v, n.Start)
		Walk(v, n.End)
		Walk(v, n.Body)

	case *RepeatStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
		Walk(v, n.Cond)

	case *CaseStmt:
		Walk(v, n.Expr)
		for _, arm := range n.Arms {
			for _, c := range arm.Constants {
				Walk(v, c)
			}
			Walk(v, arm.Body)
		}

	case *CallStmt:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *EmptyStmt:
		// leaf

	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryExpr:
		Walk(v, n.Operand)

	case *Variable:
		if n.Index != nil {
			Walk(v, n.Index)
		}
		if n.Next != nil {
			Walk(v, n.Next)
		}

	case *NumberLit, *StringLit, *CharLit, *BoolLit:
		// leaves

	case *CallExpr:
		for _, a := range n.Args {
			Walk(v, a)
		}

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree, calling f for each node. If f returns
// false, the node's children are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
