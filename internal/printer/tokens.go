package printer

import (
	"fmt"
	"io"

	"pascals/internal/token"
)

// WriteTokens prints one token per line as a kind column padded to 20
// characters followed by the lexeme.
func WriteTokens(w io.Writer, tokens []token.Token) error {
	for _, t := range tokens {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", t.Kind, t.Text); err != nil {
			return err
		}
	}
	return nil
}
