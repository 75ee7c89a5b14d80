package lexer

import (
	"testing"

	"pascals/internal/token"
)

func TestNegativeNumberAfterAssign(t *testing.T) {
	tokens := meaningful(tokenize(t, "x := -5"))
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[2].Kind != token.NUMBER || tokens[2].Text != "-5" {
		t.Errorf("expected NUMBER '-5', got %s %q", tokens[2].Kind, tokens[2].Text)
	}
}

func TestBinaryMinusStaysSplit(t *testing.T) {
	tokens := meaningful(tokenize(t, "x - 5"))
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[1].Kind != token.ARITHMETIC_OPERATOR || tokens[1].Text != "-" {
		t.Errorf("expected binary '-', got %s %q", tokens[1].Kind, tokens[1].Text)
	}
	if tokens[2].Kind != token.NUMBER || tokens[2].Text != "5" {
		t.Errorf("expected NUMBER '5', got %s %q", tokens[2].Kind, tokens[2].Text)
	}
}

func TestNegativeNumberAtStreamStart(t *testing.T) {
	tokens := meaningful(tokenize(t, "-3"))
	if len(tokens) != 1 || tokens[0].Text != "-3" {
		t.Fatalf("expected single NUMBER '-3', got %v", tokens)
	}
}

func TestNegativeNumberAfterCompoundKeyword(t *testing.T) {
	// turun-ke is rebuilt from three tokens before the negative-number
	// pass runs, so the minus after it must count as unary.
	tokens := meaningful(tokenize(t, "untuk i := 0 turun-ke -5 lakukan"))

	var found bool
	for _, tok := range tokens {
		if tok.Kind == token.NUMBER && tok.Text == "-5" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected merged NUMBER '-5' after turun-ke, got %v", tokens)
	}
}

func TestNegativeNumberInArguments(t *testing.T) {
	tokens := meaningful(tokenize(t, "f(-1, -2)"))
	var numbers []string
	for _, tok := range tokens {
		if tok.Kind == token.NUMBER {
			numbers = append(numbers, tok.Text)
		}
	}
	if len(numbers) != 2 || numbers[0] != "-1" || numbers[1] != "-2" {
		t.Errorf("expected numbers [-1 -2], got %v", numbers)
	}
}

func TestHyphenatedKeywordMerge(t *testing.T) {
	for _, input := range []string{"selain-itu", "turun-ke"} {
		tokens := meaningful(tokenize(t, input))
		if len(tokens) != 1 {
			t.Fatalf("%q: expected one token, got %v", input, tokens)
		}
		if tokens[0].Kind != token.KEYWORD || tokens[0].Text != input {
			t.Errorf("%q: expected KEYWORD, got %s %q", input, tokens[0].Kind, tokens[0].Text)
		}
	}
}

func TestHyphenBetweenIdentifiersStaysSplit(t *testing.T) {
	tokens := meaningful(tokenize(t, "a-b"))
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[1].Kind != token.ARITHMETIC_OPERATOR {
		t.Errorf("expected '-' to stay an operator, got %s", tokens[1].Kind)
	}
}

func TestCharLiteralDisambiguation(t *testing.T) {
	tokens := meaningful(tokenize(t, "'A' 'AB' ''"))
	expected := []token.Kind{token.CHAR_LITERAL, token.STRING_LITERAL, token.STRING_LITERAL}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %v", len(expected), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d (%q): expected %s, got %s", i, tokens[i].Text, exp, tokens[i].Kind)
		}
	}
}

func TestMergedTokenSpans(t *testing.T) {
	tokens := meaningful(tokenize(t, "selain-itu"))
	if tokens[0].Start != 0 || tokens[0].End != len("selain-itu") {
		t.Errorf("merged keyword span: got [%d,%d)", tokens[0].Start, tokens[0].End)
	}

	tokens = meaningful(tokenize(t, ":= -42"))
	if tokens[1].Start != 3 || tokens[1].End != 6 {
		t.Errorf("merged number span: got [%d,%d)", tokens[1].Start, tokens[1].End)
	}
}
