package ast

// The node set is closed: every variant lives in this package and every
// traversal switches over all of them. Adding a variant means extending
// Walk and each analyzer switch, which the default-panic branches surface
// immediately.

// Node is implemented by every syntax tree node. ToDict converts the node
// to a structural dictionary with stable field names for serialization by
// external printers.
type Node interface {
	ToDict() map[string]any
	astNode()
}

// Decl is a declaration appearing in a block's declaration part.
type Decl interface {
	Node
	declNode()
}

// TypeSpec is a type denotation on the right-hand side of declarations.
type TypeSpec interface {
	Node
	typeSpecNode()
}

// Stmt is an executable statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression producing a value.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node.
type Program struct {
	Name  string
	Block *Block
}

// Block is a declaration part followed by a compound statement.
type Block struct {
	Decls []Decl
	Body  *CompoundStmt
}

func (*Program) astNode() {}
func (*Block) astNode()   {}

func (p *Program) ToDict() map[string]any {
	return map[string]any{
		"type":  "Program",
		"name":  p.Name,
		"block": p.Block.ToDict(),
	}
}

func (b *Block) ToDict() map[string]any {
	decls := make([]any, 0, len(b.Decls))
	for _, d := range b.Decls {
		decls = append(decls, d.ToDict())
	}
	return map[string]any{
		"type":               "Block",
		"declarations":       decls,
		"compound_statement": b.Body.ToDict(),
	}
}
