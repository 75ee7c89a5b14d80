package text

import (
	"errors"
	"testing"
)

func TestPositionTracking(t *testing.T) {
	r := NewReader("ab\ncd")

	if p := r.Pos(); p.Line != 1 || p.Column != 1 {
		t.Fatalf("start position: got %s", p)
	}

	r.Advance() // b
	r.Advance() // \n
	r.Advance() // c
	if p := r.Pos(); p.Line != 2 || p.Column != 1 || p.Index != 3 {
		t.Errorf("after newline: got %+v", p)
	}
	if r.Current() != 'c' {
		t.Errorf("expected 'c', got %q", r.Current())
	}
}

func TestPeek(t *testing.T) {
	r := NewReader("xyz")

	if ch, ok := r.Peek(0); !ok || ch != 'x' {
		t.Errorf("Peek(0): got %q, %t", ch, ok)
	}
	if ch, ok := r.Peek(2); !ok || ch != 'z' {
		t.Errorf("Peek(2): got %q, %t", ch, ok)
	}
	if _, ok := r.Peek(3); ok {
		t.Error("Peek past end should fail")
	}
	if r.Pos().Index != 0 {
		t.Error("Peek must not consume")
	}
}

func TestEOFBehavior(t *testing.T) {
	r := NewReader("a")
	r.Advance()

	if !r.EOF() {
		t.Fatal("expected EOF")
	}
	if r.Current() != 0 {
		t.Errorf("Current at EOF: got %q", r.Current())
	}

	// Advancing past the end stays put.
	r.Advance()
	if r.Pos().Index != 1 {
		t.Errorf("position moved past end: %+v", r.Pos())
	}
}

func TestSeekToRecomputesLineAndColumn(t *testing.T) {
	source := "satu\ndua\ntiga"
	r := NewReader(source)
	for !r.EOF() {
		r.Advance()
	}

	r.SeekTo(5) // 'd' of "dua"
	if p := r.Pos(); p.Index != 5 || p.Line != 2 || p.Column != 1 {
		t.Errorf("SeekTo(5): got %+v", p)
	}

	r.SeekTo(-1)
	if p := r.Pos(); p.Index != 0 {
		t.Errorf("SeekTo(-1) should clamp to start, got %+v", p)
	}
}

func TestExpectError(t *testing.T) {
	r := NewReader("a\nb")
	r.Advance()
	r.Advance()

	if err := r.Expect('b'); err != nil {
		t.Fatalf("Expect('b'): %v", err)
	}

	err := r.Expect('x')
	var expErr *ExpectError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExpectError, got %v", err)
	}
	want := `[LexicalError] Expected 'x', got 'b' at (line 2, col 1)`
	if err.Error() != want {
		t.Errorf("message:\nwant %s\ngot  %s", want, err.Error())
	}
}

func TestLineColumnAt(t *testing.T) {
	source := "ab\ncde\nf"
	cases := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 2, 4},
		{7, 3, 1},
		{99, 3, 2},
		{-5, 1, 1},
	}
	for _, tc := range cases {
		line, col := LineColumnAt(source, tc.offset)
		if line != tc.line || col != tc.col {
			t.Errorf("offset %d: expected (%d,%d), got (%d,%d)", tc.offset, tc.line, tc.col, line, col)
		}
	}
}
