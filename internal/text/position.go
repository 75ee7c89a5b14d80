package text

import "fmt"

// Position is a location in source text. Index is a 0-based byte offset;
// Line and Column are 1-based.
type Position struct {
	Index  int
	Line   int
	Column int
}

// StartPosition returns the position of the first character of a source.
func StartPosition() Position {
	return Position{Index: 0, Line: 1, Column: 1}
}

// Advance returns the position one character past p. Moving over a newline
// bumps the line counter and resets the column to 1.
func (p Position) Advance(ch byte) Position {
	if ch == '\n' {
		return Position{Index: p.Index + 1, Line: p.Line + 1, Column: 1}
	}
	return Position{Index: p.Index + 1, Line: p.Line, Column: p.Column + 1}
}

func (p Position) String() string {
	return fmt.Sprintf("(line %d, col %d)", p.Line, p.Column)
}

// LineColumnAt converts a byte offset into a (line, column) pair, both
// 1-based. Offsets outside the source are clamped to its bounds.
func LineColumnAt(source string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}

	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
