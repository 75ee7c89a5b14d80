package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func arrayOf(elem *Type, low, high int) *Type {
	return &Type{Kind: INTEGER, Array: &ArrayInfo{
		Index:    Integer,
		Elem:     elem,
		Low:      low,
		High:     high,
		ElemSize: elem.Size(),
		Size:     (high - low + 1) * elem.Size(),
		RefIndex: -1,
	}}
}

func recordOf(fields map[string]Field, order []string, size int) *Type {
	return &Type{Kind: INTEGER, Record: &RecordInfo{Fields: fields, Order: order, Size: size}}
}

func TestEqualComparesKindTagOnly(t *testing.T) {
	assert.True(t, Integer.Equal(Integer))
	assert.False(t, Integer.Equal(Real))
	assert.False(t, Integer.Equal(nil))

	// Composite types carry an integer tag, so tag-only equality treats
	// them the same as a plain integer.
	rec := recordOf(map[string]Field{"x": {Type: Integer}}, []string{"x"}, 1)
	assert.True(t, rec.Equal(Integer))
	assert.True(t, arrayOf(Integer, 1, 3).Equal(rec))
}

func TestCompatibleWithIsDirectional(t *testing.T) {
	assert.True(t, Real.CompatibleWith(Integer))
	assert.False(t, Integer.CompatibleWith(Real))
	assert.True(t, Boolean.CompatibleWith(Boolean))
	assert.False(t, Char.CompatibleWith(String))
	assert.False(t, Integer.CompatibleWith(nil))
}

func TestArrayCompatibilityByElementType(t *testing.T) {
	ints := arrayOf(Integer, 1, 5)
	moreInts := arrayOf(Integer, 0, 9)
	reals := arrayOf(Real, 1, 5)

	// Bounds do not participate, only element compatibility.
	assert.True(t, ints.CompatibleWith(moreInts))
	assert.True(t, reals.CompatibleWith(ints))
	assert.False(t, ints.CompatibleWith(reals))
}

func TestRecordsAreNeverCompatible(t *testing.T) {
	a := recordOf(map[string]Field{"x": {Type: Integer}}, []string{"x"}, 1)
	b := recordOf(map[string]Field{"x": {Type: Integer}}, []string{"x"}, 1)

	assert.False(t, a.CompatibleWith(b))
	assert.False(t, a.CompatibleWith(a))
}

func TestOrdinalKinds(t *testing.T) {
	assert.True(t, Integer.IsOrdinal())
	assert.True(t, Boolean.IsOrdinal())
	assert.True(t, Char.IsOrdinal())
	assert.False(t, Real.IsOrdinal())
	assert.False(t, String.IsOrdinal())
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Integer.Size())
	assert.Equal(t, 5, arrayOf(Integer, 1, 5).Size())

	nested := arrayOf(arrayOf(Integer, 1, 3), 1, 2)
	assert.Equal(t, 6, nested.Size())

	rec := recordOf(map[string]Field{"x": {Type: Integer}}, []string{"x"}, 4)
	assert.Equal(t, 4, rec.Size())
}

func TestString(t *testing.T) {
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "array of real", arrayOf(Real, 1, 2).String())
	assert.Equal(t, "record", recordOf(nil, nil, 0).String())
	assert.Equal(t, "void", Void.String())
}
