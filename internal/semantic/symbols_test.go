package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascals/internal/types"
)

func TestLookupMissingName(t *testing.T) {
	table := NewTable()
	assert.Equal(t, -1, table.Lookup("nothing"))
	assert.Equal(t, -1, table.LookupCurrentScope("nothing"))
}

func TestIndexZeroTerminatesChains(t *testing.T) {
	table := NewTable()
	first := table.Enter("first", CONSTANT, types.Integer)
	require.Equal(t, 0, first)

	// Index 0 doubles as the chain terminator, so the scoped walk never
	// visits it; only the flat level-0 fallback finds the entry.
	assert.Equal(t, -1, table.LookupCurrentScope("first"))
	assert.Equal(t, 0, table.Lookup("first"))

	second := table.Enter("second", CONSTANT, types.Integer)
	assert.Equal(t, second, table.LookupCurrentScope("second"))
	assert.Equal(t, second, table.Lookup("second"))
}

func TestVariableAddressesRestartPerScope(t *testing.T) {
	table := NewTable()
	table.Enter("pad", CONSTANT, types.Integer)

	table.EnterScope()
	a := table.Enter("a", VARIABLE, types.Integer)
	b := table.Enter("b", VARIABLE, types.Integer)

	// The first three frame slots are reserved for bookkeeping.
	assert.Equal(t, 3, table.GetEntry(a).Address)
	assert.Equal(t, 4, table.GetEntry(b).Address)
	assert.Equal(t, 2, table.GetBlockEntry(table.Display(1)).VSize)
}

func TestExitScopeKeepsEntries(t *testing.T) {
	table := NewTable()
	table.Enter("pad", CONSTANT, types.Integer)

	table.EnterScope()
	table.Enter("inner", VARIABLE, types.Integer)
	before := len(table.Tab)
	table.ExitScope()

	// Soft delete: the arena is never truncated, but the name stops
	// resolving because its level-1 chain is no longer visible.
	assert.Len(t, table.Tab, before)
	assert.Equal(t, -1, table.Lookup("inner"))
}

func TestShadowingResolvesInnermost(t *testing.T) {
	table := NewTable()
	table.Enter("pad", CONSTANT, types.Integer)
	outer := table.Enter("x", VARIABLE, types.Integer)

	table.EnterScope()
	inner := table.Enter("x", VARIABLE, types.Boolean)
	assert.Equal(t, inner, table.Lookup("x"))

	table.ExitScope()
	assert.Equal(t, outer, table.Lookup("x"))
}

func TestVariableLinksSkipNonVariables(t *testing.T) {
	table := NewTable()
	table.Enter("pad", CONSTANT, types.Integer)

	a := table.Enter("a", VARIABLE, types.Integer)
	b := table.Enter("b", VARIABLE, types.Integer)
	table.Enter("c", CONSTANT, types.Integer)
	d := table.Enter("d", VARIABLE, types.Integer)

	assert.Equal(t, a, table.GetEntry(b).Link)
	// c interrupted the variable chain, so d starts a fresh one.
	assert.Equal(t, 0, table.GetEntry(d).Link)
}

func TestEnterArrayComputesSize(t *testing.T) {
	table := NewTable()
	idx := table.EnterArray(types.Integer, types.Integer, 1, 10, 1)

	entry := table.GetArrayEntry(idx)
	require.NotNil(t, entry)
	assert.Equal(t, 10, entry.Size)
	assert.Equal(t, 1, entry.Low)
	assert.Equal(t, 10, entry.High)
}

func TestGettersReturnNilOutOfRange(t *testing.T) {
	table := NewTable()
	assert.Nil(t, table.GetEntry(-1))
	assert.Nil(t, table.GetEntry(5))
	assert.Nil(t, table.GetArrayEntry(0))
	assert.Nil(t, table.GetBlockEntry(99))
}
