package ast

// VarDecl declares one or more identifiers of a common type. It doubles
// as the field-group node inside record types.
type VarDecl struct {
	Names []string
	Type  TypeSpec
}

// ConstDecl binds a name to a literal value.
type ConstDecl struct {
	Name  string
	Value Expr
}

// TypeDecl binds a name to a type denotation.
type TypeDecl struct {
	Name string
	Type TypeSpec
}

// ProcDecl declares a procedure with its own nested block.
type ProcDecl struct {
	Name   string
	Params []*Param
	Block  *Block
}

// FuncDecl declares a function: like ProcDecl, plus a result type.
type FuncDecl struct {
	Name   string
	Params []*Param
	Result TypeSpec
	Block  *Block
}

// Param is a parameter group: identifiers sharing one type.
type Param struct {
	Names []string
	Type  TypeSpec
}

// SimpleType names a built-in or previously declared type.
type SimpleType struct {
	Name string
}

// ArrayType denotes an array. Either the Low/High bound expressions are
// set (range index form) or Index names a simple index type.
type ArrayType struct {
	Low   Expr
	High  Expr
	Index TypeSpec
	Elem  TypeSpec
}

// RecordType denotes a record as an ordered list of field groups.
type RecordType struct {
	Fields []*VarDecl
}

func (*VarDecl) astNode()   {}
func (*ConstDecl) astNode() {}
func (*TypeDecl) astNode()  {}
func (*ProcDecl) astNode()  {}
func (*FuncDecl) astNode()  {}
func (*Param) astNode()     {}

func (*VarDecl) declNode()   {}
func (*ConstDecl) declNode() {}
func (*TypeDecl) declNode()  {}
func (*ProcDecl) declNode()  {}
func (*FuncDecl) declNode()  {}

func (*SimpleType) astNode() {}
func (*ArrayType) astNode()  {}
func (*RecordType) astNode() {}

func (*SimpleType) typeSpecNode() {}
func (*ArrayType) typeSpecNode()  {}
func (*RecordType) typeSpecNode() {}

func (d *VarDecl) ToDict() map[string]any {
	return map[string]any{
		"type":        "VarDeclaration",
		"identifiers": append([]string(nil), d.Names...),
		"type_spec":   d.Type.ToDict(),
	}
}

func (d *ConstDecl) ToDict() map[string]any {
	return map[string]any{
		"type":       "ConstDeclaration",
		"identifier": d.Name,
		"value":      d.Value.ToDict(),
	}
}

func (d *TypeDecl) ToDict() map[string]any {
	return map[string]any{
		"type":       "TypeDeclaration",
		"identifier": d.Name,
		"type_spec":  d.Type.ToDict(),
	}
}

func (d *ProcDecl) ToDict() map[string]any {
	return map[string]any{
		"type":       "ProcedureDeclaration",
		"name":       d.Name,
		"parameters": paramDicts(d.Params),
		"block":      d.Block.ToDict(),
	}
}

func (d *FuncDecl) ToDict() map[string]any {
	return map[string]any{
		"type":        "FunctionDeclaration",
		"name":        d.Name,
		"parameters":  paramDicts(d.Params),
		"return_type": d.Result.ToDict(),
		"block":       d.Block.ToDict(),
	}
}

func (p *Param) ToDict() map[string]any {
	return map[string]any{
		"type":        "Parameter",
		"identifiers": append([]string(nil), p.Names...),
		"type_spec":   p.Type.ToDict(),
	}
}

func (t *SimpleType) ToDict() map[string]any {
	return map[string]any{
		"type": "SimpleType",
		"name": t.Name,
	}
}

func (t *ArrayType) ToDict() map[string]any {
	var index any
	if t.Index != nil {
		index = t.Index.ToDict()
	} else {
		index = map[string]any{
			"type":  "Range",
			"start": t.Low.ToDict(),
			"end":   t.High.ToDict(),
		}
	}
	return map[string]any{
		"type":         "ArrayType",
		"index_type":   index,
		"element_type": t.Elem.ToDict(),
	}
}

func (t *RecordType) ToDict() map[string]any {
	fields := make([]any, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, f.ToDict())
	}
	return map[string]any{
		"type":   "RecordType",
		"fields": fields,
	}
}

func paramDicts(params []*Param) []any {
	out := make([]any, 0, len(params))
	for _, p := range params {
		out = append(out, p.ToDict())
	}
	return out
}
