package printer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascals/internal/parser"
	"pascals/internal/semantic"
	"pascals/internal/token"
)

func TestWriteTokens(t *testing.T) {
	var b strings.Builder
	err := WriteTokens(&b, []token.Token{
		{Kind: token.KEYWORD, Text: "mulai"},
		{Kind: token.IDENTIFIER, Text: "x"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "KEYWORD              mulai", lines[0])
	assert.Equal(t, "IDENTIFIER           x", lines[1])
}

func analyzedTable(t *testing.T) *semantic.Table {
	t.Helper()
	prog, err := parser.ParseSource(`program p;
variabel a: larik [1..4] dari integer;
mulai
selesai.`)
	require.NoError(t, err)

	analyzer := semantic.NewAnalyzer()
	require.NoError(t, analyzer.Analyze(prog))
	return analyzer.Table()
}

func TestWriteSymbolTableSections(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteSymbolTable(&b, analyzedTable(t)))
	out := b.String()

	assert.Contains(t, out, "SYMBOL TABLE (tab)")
	assert.Contains(t, out, "ARRAY TABLE (atab)")
	assert.Contains(t, out, "BLOCK TABLE (btab)")
	assert.Contains(t, out, "array of integer")
}

func TestSymbolTableJSON(t *testing.T) {
	out, err := SymbolTableJSON(analyzedTable(t))
	require.NoError(t, err)

	var dump struct {
		Symbols []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"symbols"`
		Arrays []struct {
			Low  int `json:"low"`
			High int `json:"high"`
			Size int `json:"size"`
		} `json:"arrays"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &dump))

	var found bool
	for _, s := range dump.Symbols {
		if s.Name == "a" && s.Kind == "variable" {
			found = true
		}
	}
	assert.True(t, found, "variable 'a' missing from dump")

	require.Len(t, dump.Arrays, 1)
	assert.Equal(t, 1, dump.Arrays[0].Low)
	assert.Equal(t, 4, dump.Arrays[0].High)
	assert.Equal(t, 4, dump.Arrays[0].Size)
}
