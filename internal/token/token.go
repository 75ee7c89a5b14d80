package token

import "fmt"

// Kind classifies a lexeme. The set is closed: the scanner's automaton
// configuration maps final states onto these names.
type Kind int

const (
	KEYWORD Kind = iota
	IDENTIFIER
	NUMBER
	STRING_LITERAL
	CHAR_LITERAL
	ARITHMETIC_OPERATOR
	RELATIONAL_OPERATOR
	LOGICAL_OPERATOR
	ASSIGN_OPERATOR
	SEMICOLON
	COMMA
	COLON
	DOT
	LPARENTHESIS
	RPARENTHESIS
	LBRACKET
	RBRACKET
	RANGE_OPERATOR
	COMMENT
	WHITESPACE
	UNKNOWN
)

var kindNames = [...]string{
	KEYWORD:             "KEYWORD",
	IDENTIFIER:          "IDENTIFIER",
	NUMBER:              "NUMBER",
	STRING_LITERAL:      "STRING_LITERAL",
	CHAR_LITERAL:        "CHAR_LITERAL",
	ARITHMETIC_OPERATOR: "ARITHMETIC_OPERATOR",
	RELATIONAL_OPERATOR: "RELATIONAL_OPERATOR",
	LOGICAL_OPERATOR:    "LOGICAL_OPERATOR",
	ASSIGN_OPERATOR:     "ASSIGN_OPERATOR",
	SEMICOLON:           "SEMICOLON",
	COMMA:               "COMMA",
	COLON:               "COLON",
	DOT:                 "DOT",
	LPARENTHESIS:        "LPARENTHESIS",
	RPARENTHESIS:        "RPARENTHESIS",
	LBRACKET:            "LBRACKET",
	RBRACKET:            "RBRACKET",
	RANGE_OPERATOR:      "RANGE_OPERATOR",
	COMMENT:             "COMMENT",
	WHITESPACE:          "WHITESPACE",
	UNKNOWN:             "UNKNOWN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindFromName maps a configuration-side kind name back to its Kind.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return UNKNOWN, false
}

// Token is an immutable lexeme: its kind, literal text, and the byte
// offsets it spans in the source. End equals Start plus the text length
// except for merged tokens (negative numbers, hyphenated keywords), whose
// span covers the original sub-tokens.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [%d:%d]", t.Kind, t.Text, t.Start, t.End)
}
