// Package types models the analyzable types of the language: the simple
// kinds plus array and record shapes carried as optional metadata on a
// kind tag.
package types

// Kind is the simple-type tag. Array and record types carry Info
// structures in addition to their tag; the tag alone decides Equal, so
// two structurally different records with the same tag compare equal.
type Kind int

const (
	INTEGER Kind = iota
	REAL
	BOOLEAN
	CHAR
	STRING
	VOID
)

var kindNames = [...]string{
	INTEGER: "integer",
	REAL:    "real",
	BOOLEAN: "boolean",
	CHAR:    "char",
	STRING:  "string",
	VOID:    "void",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ArrayInfo describes an array type. RefIndex is a back-reference into
// the symbol table's array table (-1 when the type was not elaborated
// through a declaration).
type ArrayInfo struct {
	Index    *Type
	Elem     *Type
	Low      int
	High     int
	ElemSize int
	Size     int
	RefIndex int
}

// Field is a record member: its type and byte-ish offset.
type Field struct {
	Type   *Type
	Offset int
}

// RecordInfo describes a record type. Order preserves declaration order
// for printers; Fields is the lookup map.
type RecordInfo struct {
	Fields map[string]Field
	Order  []string
	Size   int
}

// Type is a simple kind optionally carrying array or record metadata.
type Type struct {
	Kind   Kind
	Array  *ArrayInfo
	Record *RecordInfo
}

// Shared simple-type instances. Composite types are built per
// elaboration; these singletons cover everything else.
var (
	Integer = &Type{Kind: INTEGER}
	Real    = &Type{Kind: REAL}
	Boolean = &Type{Kind: BOOLEAN}
	Char    = &Type{Kind: CHAR}
	String  = &Type{Kind: STRING}
	Void    = &Type{Kind: VOID}
)

func (t *Type) IsSimple() bool {
	return t.Array == nil && t.Record == nil
}

func (t *Type) IsArray() bool {
	return t.Array != nil
}

func (t *Type) IsRecord() bool {
	return t.Record != nil
}

func (t *Type) IsNumeric() bool {
	return t.Kind == INTEGER || t.Kind == REAL
}

// IsOrdinal reports whether the type has discrete enumerable values.
func (t *Type) IsOrdinal() bool {
	return t.Kind == INTEGER || t.Kind == BOOLEAN || t.Kind == CHAR
}

// Equal compares by kind tag only. Array and record metadata do not
// participate.
func (t *Type) Equal(other *Type) bool {
	if other == nil {
		return false
	}
	return t.Kind == other.Kind
}

// CompatibleWith reports whether a value of type other may flow into a
// slot of type t. The relation is directional: REAL accepts INTEGER
// (implicit widening) but not the reverse. Arrays are compatible when
// their element types are. Records match no branch and always fall
// through to false; record equality elsewhere is tag-only via Equal.
// Both quirks are kept as-is.
func (t *Type) CompatibleWith(other *Type) bool {
	if other == nil {
		return false
	}

	if t.Kind == other.Kind {
		if t.IsSimple() && other.IsSimple() {
			return true
		}
		if t.IsArray() && other.IsArray() {
			return t.Array.Elem.CompatibleWith(other.Array.Elem)
		}
	}

	if t.Kind == REAL && other.Kind == INTEGER {
		return true
	}

	return false
}

func (t *Type) String() string {
	if t.IsArray() {
		return "array of " + t.Array.Elem.String()
	}
	if t.IsRecord() {
		return "record"
	}
	return t.Kind.String()
}

// Size returns the storage size of the type in abstract units: composite
// sizes from their metadata, 1 for every simple type.
func (t *Type) Size() int {
	if t.IsArray() {
		return t.Array.Size
	}
	if t.IsRecord() {
		return t.Record.Size
	}
	return 1
}
