package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pascals/internal/text"
)

// Diagnostic is a formatted-ready error: a code, a message, and an
// optional source span.
type Diagnostic struct {
	Code    string
	Message string
	Line    int // 1-based; 0 means no location
	Column  int // 1-based
	Length  int // span of the marker, at least 1 when located
}

// Reporter renders diagnostics with source context: a colored header, the
// file location, the offending line with a caret marker, and one line of
// context on each side.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Diagnose converts a taxonomy error into a Diagnostic, recovering the
// source location where the error carries one.
func Diagnose(err error, source string) Diagnostic {
	var unexpected *UnexpectedTokenError
	if stderrors.As(err, &unexpected) {
		line, col := text.LineColumnAt(source, unexpected.Got.Start)
		length := unexpected.Got.End - unexpected.Got.Start
		if length < 1 {
			length = 1
		}
		return Diagnostic{Code: CodeUnexpectedToken, Message: err.Error(), Line: line, Column: col, Length: length}
	}

	var eof *UnexpectedEOFError
	if stderrors.As(err, &eof) {
		line, col := text.LineColumnAt(source, len(source))
		return Diagnostic{Code: CodeUnexpectedEOF, Message: err.Error(), Line: line, Column: col, Length: 1}
	}

	var expect *text.ExpectError
	if stderrors.As(err, &expect) {
		return Diagnostic{Code: CodeLexical, Message: expect.Message, Line: expect.Position.Line, Column: expect.Position.Column, Length: 1}
	}

	var semantic SemanticError
	if stderrors.As(err, &semantic) {
		return Diagnostic{Code: semantic.Code(), Message: semantic.Error()}
	}

	// Anything else is an internal error, not an invalid input. Surface
	// it with full detail rather than swallowing it.
	return Diagnostic{Message: fmt.Sprintf("internal error: %v", err)}
}

// Format renders one diagnostic.
func (r *Reporter) Format(d Diagnostic) string {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder

	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", red("error"), d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", red("error"), d.Message)
	}

	if d.Line <= 0 || d.Line > len(r.lines) {
		return b.String()
	}

	width := len(fmt.Sprintf("%d", d.Line+1))
	if width < 3 {
		width = 3
	}
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Line, d.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if d.Line > 1 {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Line-1)), dim("│"), r.lines[d.Line-2])
	}

	fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, d.Line)), dim("│"), r.lines[d.Line-1])
	fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), r.marker(d.Column, d.Length))

	if d.Line < len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Line+1)), dim("│"), r.lines[d.Line])
	}

	return b.String()
}

func (r *Reporter) marker(column, length int) string {
	if length < 1 {
		length = 1
	}
	pad := column - 1
	if pad < 0 {
		pad = 0
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	return strings.Repeat(" ", pad) + red(strings.Repeat("^", length))
}
