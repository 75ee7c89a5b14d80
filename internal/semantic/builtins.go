package semantic

import (
	"pascals/internal/types"
)

type builtin struct {
	name string
	kind ObjectKind
	typ  *types.Type
}

// reservedWords are preloaded at level 0 so that language keywords and
// type names occupy fixed low symbol indices before any user symbol.
var reservedWords = []builtin{
	{"salah", CONSTANT, types.Boolean},
	{"benar", CONSTANT, types.Boolean},
	{"integer", TYPE, types.Integer},
	{"real", TYPE, types.Real},
	{"boolean", TYPE, types.Boolean},
	{"char", TYPE, types.Char},
	{"string", TYPE, types.String},
	{"dan", PROCEDURE, types.Void},
	{"atau", PROCEDURE, types.Void},
	{"tidak", PROCEDURE, types.Void},
	{"bagi", PROCEDURE, types.Void},
	{"mod", PROCEDURE, types.Void},
	{"program", PROCEDURE, types.Void},
	{"variabel", PROCEDURE, types.Void},
	{"konstanta", PROCEDURE, types.Void},
	{"tipe", PROCEDURE, types.Void},
	{"prosedur", PROCEDURE, types.Void},
	{"fungsi", PROCEDURE, types.Void},
	{"mulai", PROCEDURE, types.Void},
	{"selesai", PROCEDURE, types.Void},
	{"jika", PROCEDURE, types.Void},
	{"maka", PROCEDURE, types.Void},
	{"selain-itu", PROCEDURE, types.Void},
	{"selama", PROCEDURE, types.Void},
	{"lakukan", PROCEDURE, types.Void},
	{"untuk", PROCEDURE, types.Void},
	{"ke", PROCEDURE, types.Void},
	{"turun-ke", PROCEDURE, types.Void},
	{"larik", PROCEDURE, types.Void},
}

// standardLibrary are the built-in procedures and functions every
// program may call without declaring.
var standardLibrary = []builtin{
	{"write", PROCEDURE, types.Void},
	{"writeln", PROCEDURE, types.Void},
	{"read", PROCEDURE, types.Void},
	{"readln", PROCEDURE, types.Void},
	{"abs", FUNCTION, types.Integer},
	{"sqr", FUNCTION, types.Integer},
	{"sqrt", FUNCTION, types.Real},
	{"sin", FUNCTION, types.Real},
	{"cos", FUNCTION, types.Real},
	{"exp", FUNCTION, types.Real},
	{"ln", FUNCTION, types.Real},
	{"odd", FUNCTION, types.Boolean},
	{"ord", FUNCTION, types.Integer},
	{"chr", FUNCTION, types.Char},
	{"succ", FUNCTION, types.Integer},
	{"pred", FUNCTION, types.Integer},
}

func preloadBuiltins(table *Table) {
	for _, b := range reservedWords {
		table.EnterAt(b.name, b.kind, b.typ, 0, 0, true)
	}
	for _, b := range standardLibrary {
		table.EnterAt(b.name, b.kind, b.typ, 0, 0, true)
	}
}
