package printer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascals/internal/ast"
	"pascals/internal/parser"
	"pascals/internal/semantic"
)

const sample = `program contoh;
variabel x: integer;
mulai
  x := 1 + 2
selesai.`

func parseSample(t *testing.T) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource(sample)
	require.NoError(t, err)
	return prog
}

func TestFormatTree(t *testing.T) {
	out := FormatTree(parseSample(t))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "ProgramNode(name: 'contoh')", lines[0])
	assert.Contains(t, out, "└─ Block")
	assert.Contains(t, out, "Declarations")
	assert.Contains(t, out, "VarDecl('x')")
	assert.Contains(t, out, "BinOp '+'")
	assert.Contains(t, out, "Number(1)")
	assert.NotContains(t, out, "→")
}

func TestFormatDecoratedTree(t *testing.T) {
	prog := parseSample(t)
	analyzer := semantic.NewAnalyzer()
	require.NoError(t, analyzer.Analyze(prog))

	out := FormatDecoratedTree(prog, analyzer.Decoration)
	assert.Contains(t, out, "Variable('x') → ")
	assert.Contains(t, out, "type:integer")
	assert.Contains(t, out, "BinOp '+' → type:integer")
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(parseSample(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Program", decoded["type"])
	assert.Equal(t, "contoh", decoded["name"])

	block := decoded["block"].(map[string]any)
	assert.Equal(t, "Block", block["type"])
	assert.Len(t, block["declarations"], 1)
}

func TestConnectorNesting(t *testing.T) {
	out := FormatTree(parseSample(t))

	// Every non-root line is reached through exactly one connector.
	for _, line := range strings.Split(out, "\n")[1:] {
		ok := strings.Contains(line, "├─ ") || strings.Contains(line, "└─ ")
		assert.True(t, ok, "line without connector: %q", line)
	}
}
