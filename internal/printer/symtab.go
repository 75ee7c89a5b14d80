package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pascals/internal/semantic"
)

// WriteSymbolTable prints the three arenas of a finished analysis:
// symbols, array elaborations, and block entries. Entries of exited
// scopes are still present; that is the point of the dump.
func WriteSymbolTable(w io.Writer, table *semantic.Table) error {
	fmt.Fprintln(w, "SYMBOL TABLE (tab)")
	fmt.Fprintf(w, "%-5s %-16s %-10s %-16s %-5s %-7s %-5s %-5s\n",
		"idx", "name", "kind", "type", "lev", "adr", "ref", "link")
	fmt.Fprintln(w, strings.Repeat("-", 76))
	for i, e := range table.Tab {
		fmt.Fprintf(w, "%-5d %-16s %-10s %-16s %-5d %-7d %-5d %-5d\n",
			i, e.Name, e.Kind, e.Type.String(), e.Level, e.Address, e.Ref, e.Link)
	}

	if len(table.ATab) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "ARRAY TABLE (atab)")
		fmt.Fprintf(w, "%-5s %-12s %-16s %-6s %-6s %-8s %-6s\n",
			"idx", "index", "element", "low", "high", "elsize", "size")
		fmt.Fprintln(w, strings.Repeat("-", 64))
		for i, e := range table.ATab {
			fmt.Fprintf(w, "%-5d %-12s %-16s %-6d %-6d %-8d %-6d\n",
				i, e.IndexType.String(), e.ElemType.String(), e.Low, e.High, e.ElemSize, e.Size)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "BLOCK TABLE (btab)")
	fmt.Fprintf(w, "%-5s %-6s %-6s %-6s %-6s\n", "idx", "last", "lpar", "psze", "vsze")
	fmt.Fprintln(w, strings.Repeat("-", 34))
	for i, b := range table.BTab {
		fmt.Fprintf(w, "%-5d %-6d %-6d %-6d %-6d\n", i, b.Last, b.LPar, b.PSize, b.VSize)
	}
	return nil
}

// SymbolTableJSON serializes the arenas as indented JSON.
func SymbolTableJSON(table *semantic.Table) (string, error) {
	type symbolDump struct {
		Index   int    `json:"index"`
		Name    string `json:"name"`
		Kind    string `json:"kind"`
		Type    string `json:"type"`
		Level   int    `json:"level"`
		Address int    `json:"address"`
		Ref     int    `json:"ref"`
		Link    int    `json:"link"`
	}
	type arrayDump struct {
		Index     int    `json:"index"`
		IndexType string `json:"index_type"`
		ElemType  string `json:"element_type"`
		Low       int    `json:"low"`
		High      int    `json:"high"`
		ElemSize  int    `json:"element_size"`
		Size      int    `json:"size"`
	}
	type blockDump struct {
		Index int `json:"index"`
		Last  int `json:"last"`
		LPar  int `json:"lpar"`
		PSize int `json:"psze"`
		VSize int `json:"vsze"`
	}

	dump := struct {
		Symbols []symbolDump `json:"symbols"`
		Arrays  []arrayDump  `json:"arrays"`
		Blocks  []blockDump  `json:"blocks"`
	}{}

	for i, e := range table.Tab {
		dump.Symbols = append(dump.Symbols, symbolDump{
			Index: i, Name: e.Name, Kind: e.Kind.String(), Type: e.Type.String(),
			Level: e.Level, Address: e.Address, Ref: e.Ref, Link: e.Link,
		})
	}
	for i, e := range table.ATab {
		dump.Arrays = append(dump.Arrays, arrayDump{
			Index: i, IndexType: e.IndexType.String(), ElemType: e.ElemType.String(),
			Low: e.Low, High: e.High, ElemSize: e.ElemSize, Size: e.Size,
		})
	}
	for i, b := range table.BTab {
		dump.Blocks = append(dump.Blocks, blockDump{
			Index: i, Last: b.Last, LPar: b.LPar, PSize: b.PSize, VSize: b.VSize,
		})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
