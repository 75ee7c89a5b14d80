package semantic

import (
	"pascals/internal/types"
)

// ObjectKind classifies symbol table entries.
type ObjectKind int

const (
	CONSTANT ObjectKind = iota
	VARIABLE
	TYPE
	PROCEDURE
	FUNCTION
	PROGRAM
	FIELD
)

var objectKindNames = [...]string{
	CONSTANT:  "constant",
	VARIABLE:  "variable",
	TYPE:      "type",
	PROCEDURE: "procedure",
	FUNCTION:  "function",
	PROGRAM:   "program",
	FIELD:     "field",
}

func (k ObjectKind) String() string {
	if k < 0 || int(k) >= len(objectKindNames) {
		return "unknown"
	}
	return objectKindNames[k]
}

// Entry is one symbol. Link threads same-scope entries into a reverse
// chain anchored at the owning block's Last; Address is frame-relative
// for variables, a field offset for record fields, and 0 otherwise. Ref
// points a procedure or function at its block entry and an array-typed
// declaration at its array entry.
type Entry struct {
	Name    string
	Kind    ObjectKind
	Type    *types.Type
	Level   int
	Address int
	Ref     int
	Normal  bool
	Link    int
}

// ArrayEntry records an elaborated array type's bounds and sizes.
type ArrayEntry struct {
	IndexType *types.Type
	ElemType  *types.Type
	Low       int
	High      int
	ElemSize  int
	Size      int
}

// BlockEntry summarizes one scope: Last anchors its symbol chain, PSize
// and VSize count parameter and variable slots.
type BlockEntry struct {
	Last  int
	LPar  int
	PSize int
	VSize int
}

// Table is a Wirth-style symbol table: three append-only arenas plus a
// display mapping lexical level to the active block per level. Exiting
// a scope never removes entries; it only rewinds the allocation cursor,
// so a finished analysis still exposes every symbol ever entered.
type Table struct {
	Tab  []Entry
	ATab []ArrayEntry
	BTab []BlockEntry

	tx int
	ax int
	bx int

	level   int
	display [10]int
	dx      int
}

func NewTable() *Table {
	return &Table{
		Tab:  []Entry{},
		ATab: []ArrayEntry{},
		BTab: []BlockEntry{{}},
		tx:   -1,
		ax:   -1,
	}
}

// Level returns the current lexical level.
func (t *Table) Level() int {
	return t.level
}

// Display returns the block index active at the given level.
func (t *Table) Display(level int) int {
	return t.display[level]
}

// NextIndex returns the index the next Enter call will assign.
func (t *Table) NextIndex() int {
	return t.tx + 1
}

// EnterAt appends a symbol threaded onto the chain of the block active
// at the given level. Variables get the next frame-relative address and
// bump the block's variable size; their link skips over any non-variable
// entry so the chain stays homogeneous. Fields chain onto variables and
// fields. Index 0 doubles as the chain terminator, so the entry stored
// there is reachable only through the level-0 fallback scan in Lookup.
func (t *Table) EnterAt(name string, kind ObjectKind, typ *types.Type, level int, ref int, normal bool) int {
	t.tx++

	blockIdx := t.display[level]
	lastIdx := t.BTab[blockIdx].Last

	var link, address int
	switch kind {
	case VARIABLE:
		if lastIdx != 0 && t.Tab[lastIdx].Kind == VARIABLE {
			link = lastIdx
		}
		address = t.dx
		t.dx++
		t.BTab[blockIdx].VSize++
	case FIELD:
		if lastIdx != 0 && (t.Tab[lastIdx].Kind == VARIABLE || t.Tab[lastIdx].Kind == FIELD) {
			link = lastIdx
		}
	default:
		link = lastIdx
	}

	t.BTab[blockIdx].Last = t.tx

	t.Tab = append(t.Tab, Entry{
		Name:    name,
		Kind:    kind,
		Type:    typ,
		Level:   level,
		Address: address,
		Ref:     ref,
		Normal:  normal,
		Link:    link,
	})
	return t.tx
}

// Enter appends a symbol at the current level.
func (t *Table) Enter(name string, kind ObjectKind, typ *types.Type) int {
	return t.EnterAt(name, kind, typ, t.level, 0, true)
}

// EnterArray appends an array elaboration and returns its index.
func (t *Table) EnterArray(indexType, elemType *types.Type, low, high, elemSize int) int {
	t.ax++
	t.ATab = append(t.ATab, ArrayEntry{
		IndexType: indexType,
		ElemType:  elemType,
		Low:       low,
		High:      high,
		ElemSize:  elemSize,
		Size:      (high - low + 1) * elemSize,
	})
	return t.ax
}

// EnterBlock appends a fresh block entry and returns its index.
func (t *Table) EnterBlock() int {
	t.bx++
	t.BTab = append(t.BTab, BlockEntry{})
	return t.bx
}

// Lookup resolves a name by walking each visible scope's chain from the
// innermost level outward, then falls back to a flat reverse scan over
// level-0 entries. Returns the entry index, or -1.
func (t *Table) Lookup(name string) int {
	for lev := t.level; lev >= 0; lev-- {
		blockIdx := t.display[lev]
		for i := t.BTab[blockIdx].Last; i != 0; i = t.Tab[i].Link {
			if t.Tab[i].Name == name {
				return i
			}
		}
	}

	for i := t.tx; i >= 0; i-- {
		if t.Tab[i].Name == name && t.Tab[i].Level == 0 {
			return i
		}
	}
	return -1
}

// LookupCurrentScope resolves a name against the innermost scope's chain
// only. Used for duplicate-declaration checks.
func (t *Table) LookupCurrentScope(name string) int {
	blockIdx := t.display[t.level]
	for i := t.BTab[blockIdx].Last; i != 0; i = t.Tab[i].Link {
		if t.Tab[i].Name == name {
			return i
		}
	}
	return -1
}

// EnterScope opens a nested scope: a new block entry becomes the display
// slot for the next level and the address counter restarts past the
// frame's bookkeeping slots.
func (t *Table) EnterScope() {
	t.level++
	t.display[t.level] = t.EnterBlock()
	t.dx = 3
}

// ExitScope returns to the enclosing scope, restoring the address
// counter from that scope's accumulated variable size. Entries of the
// exited scope stay in the arena.
func (t *Table) ExitScope() {
	if t.level > 0 {
		t.level--
		t.dx = t.BTab[t.display[t.level]].VSize
	}
}

// GetEntry returns the symbol at index, or nil when out of range.
func (t *Table) GetEntry(index int) *Entry {
	if index < 0 || index >= len(t.Tab) {
		return nil
	}
	return &t.Tab[index]
}

// GetArrayEntry returns the array elaboration at index, or nil.
func (t *Table) GetArrayEntry(index int) *ArrayEntry {
	if index < 0 || index >= len(t.ATab) {
		return nil
	}
	return &t.ATab[index]
}

// GetBlockEntry returns the block at index, or nil.
func (t *Table) GetBlockEntry(index int) *BlockEntry {
	if index < 0 || index >= len(t.BTab) {
		return nil
	}
	return &t.BTab[index]
}
