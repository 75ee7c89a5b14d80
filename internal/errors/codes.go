package errors

// Stable diagnostic codes, grouped by pipeline stage:
//
// E0001-E0099: semantic analysis
// E0100-E0199: parsing
// E0200-E0299: lexical analysis
// E0300-E0399: automaton configuration
const (
	CodeUndeclaredIdentifier = "E0001"
	CodeDuplicateDeclaration = "E0002"
	CodeTypeMismatch         = "E0003"
	CodeInvalidOperation     = "E0004"
	CodeInvalidArrayIndex    = "E0005"
	CodeInvalidRecordAccess  = "E0006"
	CodeInvalidFunctionCall  = "E0007"

	CodeUnexpectedToken = "E0100"
	CodeUnexpectedEOF   = "E0101"

	CodeLexical = "E0200"

	CodeInvalidConfig = "E0300"
)

// Describe returns a short human-readable description of a code.
func Describe(code string) string {
	switch code {
	case CodeUndeclaredIdentifier:
		return "Identifier is used but not declared in any visible scope"
	case CodeDuplicateDeclaration:
		return "Identifier is declared twice in the same scope"
	case CodeTypeMismatch:
		return "Expression type does not match the expected type"
	case CodeInvalidOperation:
		return "Operator is not defined for these operand types"
	case CodeInvalidArrayIndex:
		return "Array indexing on a non-array or with a non-ordinal index"
	case CodeInvalidRecordAccess:
		return "Field access on a non-record or unknown field name"
	case CodeInvalidFunctionCall:
		return "Callee is not a procedure or function of the required kind"
	case CodeUnexpectedToken:
		return "Parser found a token it did not expect"
	case CodeUnexpectedEOF:
		return "Token stream ended while more input was required"
	case CodeLexical:
		return "Character reader expectation failed"
	case CodeInvalidConfig:
		return "Automaton configuration is structurally invalid"
	default:
		return "Unknown error code"
	}
}

// Category returns the pipeline stage a code belongs to.
func Category(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Lexer"
	case code >= "E0300" && code < "E0400":
		return "Configuration"
	default:
		return "Unknown"
	}
}
