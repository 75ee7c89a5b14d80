package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascals/internal/token"
)

func TestDiagnoseUnexpectedToken(t *testing.T) {
	source := "program p;\nmulai x ;= 1 selesai."
	err := &UnexpectedTokenError{
		Expected: "':='",
		Got:      token.Token{Kind: token.SEMICOLON, Text: ";", Start: 19, End: 20},
	}

	d := Diagnose(err, source)
	assert.Equal(t, CodeUnexpectedToken, d.Code)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 9, d.Column)
	assert.Equal(t, 1, d.Length)
	assert.Contains(t, d.Message, "Expected ':='")
}

func TestDiagnoseEOFPointsAtEnd(t *testing.T) {
	source := "program p;\nmulai"
	d := Diagnose(&UnexpectedEOFError{Expected: "'selesai'"}, source)

	assert.Equal(t, CodeUnexpectedEOF, d.Code)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 6, d.Column)
}

func TestDiagnoseSemanticErrorHasNoLocation(t *testing.T) {
	d := Diagnose(&UndeclaredIdentifierError{Name: "x"}, "program p;")

	assert.Equal(t, CodeUndeclaredIdentifier, d.Code)
	assert.Zero(t, d.Line)
	assert.Equal(t, "Undeclared identifier 'x'", d.Message)
}

func TestDiagnoseUnknownError(t *testing.T) {
	d := Diagnose(assert.AnError, "")
	assert.Empty(t, d.Code)
	assert.Contains(t, d.Message, "internal error")
}

func TestFormatShowsContextAndMarker(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	source := "baris satu\nbaris dua\nbaris tiga"
	r := NewReporter("contoh.pas", source)
	out := r.Format(Diagnostic{
		Code:    CodeUnexpectedToken,
		Message: "Expected ':=', got SEMICOLON ';'",
		Line:    2,
		Column:  7,
		Length:  3,
	})

	assert.Contains(t, out, "error[E0100]")
	assert.Contains(t, out, "contoh.pas:2:7")
	assert.Contains(t, out, "baris satu")
	assert.Contains(t, out, "baris dua")
	assert.Contains(t, out, "baris tiga")

	markerLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "^^^") {
			markerLine = line
		}
	}
	require.NotEmpty(t, markerLine, "marker line missing:\n%s", out)
	assert.Contains(t, markerLine, strings.Repeat(" ", 6)+"^^^")
}

func TestFormatWithoutLocation(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	r := NewReporter("contoh.pas", "program p;")
	out := r.Format(Diagnostic{Code: CodeTypeMismatch, Message: "Type mismatch"})

	assert.Contains(t, out, "error[E0003]")
	assert.NotContains(t, out, "-->")
}

func TestDescribeAndCategory(t *testing.T) {
	assert.Equal(t, "Semantic Analysis", Category(CodeTypeMismatch))
	assert.Equal(t, "Parser", Category(CodeUnexpectedToken))
	assert.Equal(t, "Lexer", Category(CodeLexical))
	assert.Equal(t, "Configuration", Category(CodeInvalidConfig))
	assert.Equal(t, "Unknown", Category("E9999"))

	assert.NotEqual(t, "Unknown error code", Describe(CodeInvalidArrayIndex))
	assert.Equal(t, "Unknown error code", Describe("E9999"))
}
