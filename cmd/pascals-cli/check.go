package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// expectedPath derives the golden file for a source file: the sibling
// "expected" directory with a .txt extension, so input/foo.pas maps to
// expected/foo.txt.
func expectedPath(inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	parent := filepath.Dir(filepath.Dir(inputPath))
	return filepath.Join(parent, "expected", name)
}

// checkGolden compares the produced report against the golden file line
// by line. Trailing whitespace and line endings are normalized first.
func checkGolden(actual, expectedFile string) error {
	data, err := os.ReadFile(expectedFile)
	if err != nil {
		return fmt.Errorf("expected output file not found at %q", expectedFile)
	}

	actualLines := splitNormalized(actual)
	expectedLines := splitNormalized(string(data))

	if equalLines(actualLines, expectedLines) {
		color.Green("[PASS] Output matches expected!")
		return nil
	}

	color.Red("[FAIL] Output differs from expected:")
	max := len(actualLines)
	if len(expectedLines) > max {
		max = len(expectedLines)
	}
	for i := 0; i < max; i++ {
		exp, act := "<missing>", "<missing>"
		if i < len(expectedLines) {
			exp = expectedLines[i]
		}
		if i < len(actualLines) {
			act = actualLines[i]
		}
		if exp != act {
			fmt.Printf("Line %d:\n", i+1)
			fmt.Printf("  Expected: %s\n", exp)
			fmt.Printf("  Actual:   %s\n", act)
		}
	}
	os.Exit(1)
	return nil
}

func splitNormalized(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
