package semantic

import (
	"pascals/internal/ast"
	"pascals/internal/types"
)

// Decoration is the analysis result attached to a node: the resolved
// symbol index (-1 when the node names no symbol), the resolved type,
// and the lexical level the node was analyzed at. Decorations live in a
// side table keyed by node identity, so the tree itself stays untouched.
type Decoration struct {
	TabIndex int
	Type     *types.Type
	Level    int
}

type decorations map[ast.Node]*Decoration

func (d decorations) set(node ast.Node, tabIndex int, typ *types.Type, level int) {
	d[node] = &Decoration{TabIndex: tabIndex, Type: typ, Level: level}
}

func (d decorations) setType(node ast.Node, typ *types.Type) {
	if dec, ok := d[node]; ok {
		dec.Type = typ
		return
	}
	d[node] = &Decoration{TabIndex: -1, Type: typ}
}
