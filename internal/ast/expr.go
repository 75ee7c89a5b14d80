package ast

// BinaryExpr applies an infix operator. The operator is the source
// spelling, lowercased for word operators (div, dan, atau, ...).
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

// UnaryExpr applies a prefix operator (+, -, or logical not).
type UnaryExpr struct {
	Op      string
	Operand Expr
}

// Variable is one link of a variable access chain. The base link carries
// the identifier; each link may add an array index and/or a record field
// selector, and Next continues the chain for compound accesses such as
// a[i].f[j].
type Variable struct {
	Name  string
	Index Expr
	Field string
	Next  *Variable
}

// NumberLit is an integer or real literal. IsReal selects which of Int
// and Real holds the value; Raw preserves the source spelling.
type NumberLit struct {
	Raw    string
	IsReal bool
	Int    int64
	Real   float64
}

// StringLit is a string literal with quotes stripped.
type StringLit struct {
	Value string
}

// CharLit is a single-character literal with quotes stripped.
type CharLit struct {
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// CallExpr invokes a function in expression position.
type CallExpr struct {
	Name string
	Args []Expr
}

func (*BinaryExpr) astNode() {}
func (*UnaryExpr) astNode()  {}
func (*Variable) astNode()   {}
func (*NumberLit) astNode()  {}
func (*StringLit) astNode()  {}
func (*CharLit) astNode()    {}
func (*BoolLit) astNode()    {}
func (*CallExpr) astNode()   {}

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*Variable) exprNode()   {}
func (*NumberLit) exprNode()  {}
func (*StringLit) exprNode()  {}
func (*CharLit) exprNode()    {}
func (*BoolLit) exprNode()    {}
func (*CallExpr) exprNode()   {}

func (e *BinaryExpr) ToDict() map[string]any {
	return map[string]any{
		"type":     "BinaryOp",
		"operator": e.Op,
		"left":     e.Left.ToDict(),
		"right":    e.Right.ToDict(),
	}
}

func (e *UnaryExpr) ToDict() map[string]any {
	return map[string]any{
		"type":     "UnaryOp",
		"operator": e.Op,
		"operand":  e.Operand.ToDict(),
	}
}

func (v *Variable) ToDict() map[string]any {
	d := map[string]any{
		"type": "Variable",
		"name": v.Name,
	}
	if v.Index != nil {
		d["index"] = v.Index.ToDict()
	}
	if v.Field != "" {
		d["field"] = v.Field
	}
	if v.Next != nil {
		d["next_access"] = v.Next.ToDict()
	}
	return d
}

func (e *NumberLit) ToDict() map[string]any {
	var value any
	if e.IsReal {
		value = e.Real
	} else {
		value = e.Int
	}
	return map[string]any{
		"type":  "Number",
		"value": value,
	}
}

func (e *StringLit) ToDict() map[string]any {
	return map[string]any{
		"type":  "String",
		"value": e.Value,
	}
}

func (e *CharLit) ToDict() map[string]any {
	return map[string]any{
		"type":  "Char",
		"value": e.Value,
	}
}

func (e *BoolLit) ToDict() map[string]any {
	return map[string]any{
		"type":  "Boolean",
		"value": e.Value,
	}
}

func (e *CallExpr) ToDict() map[string]any {
	return map[string]any{
		"type":      "FunctionCall",
		"name":      e.Name,
		"arguments": exprDicts(e.Args),
	}
}
