package text

import "fmt"

// Reader is a character stream over source text with position tracking.
// The source is treated as a byte sequence; the language it feeds is ASCII.
type Reader struct {
	source string
	pos    Position
}

func NewReader(source string) *Reader {
	return &Reader{source: source, pos: StartPosition()}
}

// EOF reports whether the reader has consumed the whole source.
func (r *Reader) EOF() bool {
	return r.pos.Index >= len(r.source)
}

// Current returns the character under the cursor, or 0 at end of input.
func (r *Reader) Current() byte {
	if r.EOF() {
		return 0
	}
	return r.source[r.pos.Index]
}

// Peek looks ahead k characters without consuming them. ok is false when
// the offset falls outside the source.
func (r *Reader) Peek(k int) (byte, bool) {
	idx := r.pos.Index + k
	if idx < 0 || idx >= len(r.source) {
		return 0, false
	}
	return r.source[idx], true
}

// Advance moves the cursor one character forward. Advancing at end of
// input is a no-op.
func (r *Reader) Advance() {
	if r.EOF() {
		return
	}
	r.pos = r.pos.Advance(r.source[r.pos.Index])
}

// Expect fails with an ExpectError unless the current character equals
// expected.
func (r *Reader) Expect(expected byte) error {
	if r.Current() != expected {
		return &ExpectError{
			Message:  fmt.Sprintf("Expected %q, got %q", expected, r.Current()),
			Position: r.pos,
		}
	}
	return nil
}

// SeekTo rewinds the reader to the start and advances to the given byte
// offset, recomputing line and column along the way.
func (r *Reader) SeekTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	r.pos = StartPosition()
	for r.pos.Index < offset && !r.EOF() {
		r.Advance()
	}
}

// Pos returns the current position.
func (r *Reader) Pos() Position {
	return r.pos
}

// ExpectError is returned when the reader was told to expect a specific
// character and found another.
type ExpectError struct {
	Message  string
	Position Position
}

func (e *ExpectError) Error() string {
	return fmt.Sprintf("[LexicalError] %s at %s", e.Message, e.Position)
}
