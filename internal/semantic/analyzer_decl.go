package semantic

import (
	"strings"

	"pascals/internal/ast"
	"pascals/internal/errors"
	"pascals/internal/types"
)

func (a *Analyzer) analyzeDecl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.VarDecl:
		return a.analyzeVarDecl(d)
	case *ast.ConstDecl:
		return a.analyzeConstDecl(d)
	case *ast.TypeDecl:
		return a.analyzeTypeDecl(d)
	case *ast.ProcDecl:
		return a.analyzeProcDecl(d)
	case *ast.FuncDecl:
		return a.analyzeFuncDecl(d)
	}
	return nil
}

func (a *Analyzer) analyzeVarDecl(d *ast.VarDecl) error {
	typ, err := a.resolveTypeSpec(d.Type)
	if err != nil {
		return err
	}

	for _, name := range d.Names {
		if a.table.LookupCurrentScope(name) >= 0 {
			return &errors.DuplicateDeclarationError{Name: name}
		}
		idx := a.table.Enter(name, VARIABLE, typ)
		a.dec.set(d, idx, typ, a.table.Level())
	}
	return nil
}

func (a *Analyzer) analyzeConstDecl(d *ast.ConstDecl) error {
	if a.table.LookupCurrentScope(d.Name) >= 0 {
		return &errors.DuplicateDeclarationError{Name: d.Name}
	}

	typ := inferConstType(d.Value)
	idx := a.table.Enter(d.Name, CONSTANT, typ)
	a.dec.set(d, idx, typ, a.table.Level())
	return nil
}

func (a *Analyzer) analyzeTypeDecl(d *ast.TypeDecl) error {
	if a.table.LookupCurrentScope(d.Name) >= 0 {
		return &errors.DuplicateDeclarationError{Name: d.Name}
	}

	typ, err := a.resolveTypeSpec(d.Type)
	if err != nil {
		return err
	}
	a.typeMap[strings.ToLower(d.Name)] = typ

	idx := a.table.Enter(d.Name, TYPE, typ)
	a.dec.set(d, idx, typ, a.table.Level())
	return nil
}

// analyzeProcDecl opens the procedure's scope before entering its own
// symbol, at the enclosing level, so that recursive calls from the body
// resolve through the enclosing scope's chain.
func (a *Analyzer) analyzeProcDecl(d *ast.ProcDecl) error {
	if a.table.LookupCurrentScope(d.Name) >= 0 {
		return &errors.DuplicateDeclarationError{Name: d.Name}
	}

	a.table.EnterScope()
	blockIdx := a.table.Display(a.table.Level())

	idx := a.table.EnterAt(d.Name, PROCEDURE, types.Void, a.table.Level()-1, blockIdx, true)
	a.dec.set(d, idx, types.Void, a.table.Level()-1)

	for _, param := range d.Params {
		if err := a.analyzeParam(param); err != nil {
			return err
		}
	}

	if err := a.analyzeBlock(d.Block); err != nil {
		return err
	}
	a.table.ExitScope()
	return nil
}

// analyzeFuncDecl mirrors analyzeProcDecl and additionally installs the
// return type as the active function context for the body visit.
func (a *Analyzer) analyzeFuncDecl(d *ast.FuncDecl) error {
	if a.table.LookupCurrentScope(d.Name) >= 0 {
		return &errors.DuplicateDeclarationError{Name: d.Name}
	}

	returnType, err := a.resolveTypeSpec(d.Result)
	if err != nil {
		return err
	}

	a.table.EnterScope()
	blockIdx := a.table.Display(a.table.Level())

	idx := a.table.EnterAt(d.Name, FUNCTION, returnType, a.table.Level()-1, blockIdx, true)
	a.dec.set(d, idx, returnType, a.table.Level()-1)

	saved := a.currFunc
	a.currFunc = returnType

	for _, param := range d.Params {
		if err := a.analyzeParam(param); err != nil {
			return err
		}
	}

	if err := a.analyzeBlock(d.Block); err != nil {
		return err
	}
	a.table.ExitScope()

	a.currFunc = saved
	return nil
}

func (a *Analyzer) analyzeParam(p *ast.Param) error {
	typ, err := a.resolveTypeSpec(p.Type)
	if err != nil {
		return err
	}

	for _, name := range p.Names {
		if a.table.LookupCurrentScope(name) >= 0 {
			return &errors.DuplicateDeclarationError{Name: name}
		}
		idx := a.table.Enter(name, VARIABLE, typ)
		a.dec.set(p, idx, typ, a.table.Level())
	}
	return nil
}

func (a *Analyzer) resolveTypeSpec(spec ast.TypeSpec) (*types.Type, error) {
	switch s := spec.(type) {
	case *ast.SimpleType:
		if typ, ok := a.lookupType(s.Name); ok {
			return typ, nil
		}
		return nil, &errors.UndeclaredIdentifierError{Name: s.Name}
	case *ast.ArrayType:
		return a.resolveArrayType(s)
	case *ast.RecordType:
		return a.resolveRecordType(s)
	}
	return nil, &errors.UndeclaredIdentifierError{Name: "type"}
}

// resolveArrayType elaborates an array denotation: bounds fold from
// integer literals (anything else degrades to 0), the elaboration is
// recorded in the array table, and the synthesized type keeps a
// back-reference to that entry.
func (a *Analyzer) resolveArrayType(s *ast.ArrayType) (*types.Type, error) {
	elemType, err := a.resolveTypeSpec(s.Elem)
	if err != nil {
		return nil, err
	}

	var indexType *types.Type
	var low, high int
	if s.Index != nil {
		indexType, err = a.resolveTypeSpec(s.Index)
		if err != nil {
			return nil, err
		}
	} else {
		indexType = types.Integer
		low = foldConstBound(s.Low)
		high = foldConstBound(s.High)
	}

	elemSize := elemType.Size()
	ref := a.table.EnterArray(indexType, elemType, low, high, elemSize)

	return &types.Type{
		Kind: types.INTEGER,
		Array: &types.ArrayInfo{
			Index:    indexType,
			Elem:     elemType,
			Low:      low,
			High:     high,
			ElemSize: elemSize,
			Size:     (high - low + 1) * elemSize,
			RefIndex: ref,
		},
	}, nil
}

// resolveRecordType assigns field offsets in declaration order and
// rejects duplicate field names.
func (a *Analyzer) resolveRecordType(s *ast.RecordType) (*types.Type, error) {
	info := &types.RecordInfo{Fields: map[string]types.Field{}}
	offset := 0

	for _, group := range s.Fields {
		fieldType, err := a.resolveTypeSpec(group.Type)
		if err != nil {
			return nil, err
		}
		fieldSize := fieldType.Size()

		for _, name := range group.Names {
			if _, dup := info.Fields[name]; dup {
				return nil, &errors.DuplicateDeclarationError{Name: name}
			}
			info.Fields[name] = types.Field{Type: fieldType, Offset: offset}
			info.Order = append(info.Order, name)
			offset += fieldSize
		}
	}
	info.Size = offset

	return &types.Type{Kind: types.INTEGER, Record: info}, nil
}
