package lexer

import (
	"strings"

	"pascals/internal/automaton"
	"pascals/internal/text"
	"pascals/internal/token"
)

// Lexer drives the automaton over a character reader using longest-match
// scanning, then reclassifies identifiers against the keyword and
// reserved-word lists. It holds no mutable state across calls beyond the
// immutable configuration, so one Lexer may serve many sources.
type Lexer struct {
	cfg        automaton.Config
	dfa        *automaton.DFA
	keywords   map[string]bool
	reserved   map[string]token.Kind
	hyphenated map[string]bool
}

// New builds a Lexer from an automaton configuration.
func New(cfg automaton.Config) (*Lexer, error) {
	dfa, err := automaton.New(cfg)
	if err != nil {
		return nil, err
	}

	keywords := make(map[string]bool, len(cfg.Keywords))
	for _, kw := range cfg.Keywords {
		keywords[strings.ToLower(kw)] = true
	}

	reserved := make(map[string]token.Kind, len(cfg.ReservedMap))
	for word, kindName := range cfg.ReservedMap {
		kind, ok := token.KindFromName(kindName)
		if !ok {
			return nil, &automaton.ConfigError{Message: "reserved_map entry " + word + " maps to unknown token kind " + kindName}
		}
		reserved[strings.ToLower(word)] = kind
	}

	return &Lexer{
		cfg:        cfg,
		dfa:        dfa,
		keywords:   keywords,
		reserved:   reserved,
		hyphenated: cfg.HyphenatedKeywords(),
	}, nil
}

// NewDefault builds a Lexer from the embedded rule set.
func NewDefault() (*Lexer, error) {
	return New(automaton.DefaultConfig())
}

// Config returns the lexer's immutable configuration.
func (l *Lexer) Config() automaton.Config {
	return l.cfg
}

// Tokenize scans the whole source and applies the token-stream passes:
// hyphenated keyword re-joining, negative-number merging, and char/string
// disambiguation. Hyphenated keywords are merged first so that compound
// keywords count as unary contexts for the negative-number pass. Scanning
// never fails; characters the automaton cannot start a token with degrade
// to UNKNOWN tokens.
func (l *Lexer) Tokenize(source string) []token.Token {
	tokens := l.Scan(source)
	tokens = MergeHyphenatedKeywords(tokens, l.hyphenated)
	tokens = MergeNegativeNumbers(tokens)
	tokens = FixCharLiterals(tokens)
	return tokens
}

// Scan is the raw maximal-munch loop without post-processing. Per token:
// reset the automaton, consume characters while a transition applies,
// remembering every accepting prefix, then commit the longest accepted
// one and rewind the reader past trailing probe characters.
func (l *Lexer) Scan(source string) []token.Token {
	reader := text.NewReader(source)
	var tokens []token.Token

	for !reader.EOF() {
		start := reader.Pos().Index
		l.dfa.Reset()
		accepted := ""
		acceptedKind := token.UNKNOWN
		lexeme := ""

		for !reader.EOF() && l.dfa.CanTransition(reader.Current()) {
			lexeme += string(reader.Current())
			l.dfa.Step(reader.Current())
			if kind, final := l.dfa.TokenKind(); final {
				accepted = lexeme
				acceptedKind = kind
			}
			reader.Advance()
		}

		if accepted != "" {
			kind := l.reclassify(acceptedKind, accepted)
			tokens = append(tokens, token.Token{
				Kind:  kind,
				Text:  accepted,
				Start: start,
				End:   start + len(accepted),
			})
			reader.SeekTo(start + len(accepted))
		} else {
			// The automaton may have probed several characters without
			// ever accepting; rewind so only the first one is consumed.
			reader.SeekTo(start)
			tokens = append(tokens, token.Token{
				Kind:  token.UNKNOWN,
				Text:  string(reader.Current()),
				Start: start,
				End:   start + 1,
			})
			reader.Advance()
		}
	}

	return tokens
}

// reclassify applies keyword and reserved-word overrides to accepted
// identifiers. Both lookups are case-insensitive.
func (l *Lexer) reclassify(kind token.Kind, lexeme string) token.Kind {
	if kind != token.IDENTIFIER {
		return kind
	}
	lower := strings.ToLower(lexeme)
	if l.keywords[lower] {
		return token.KEYWORD
	}
	if mapped, ok := l.reserved[lower]; ok {
		return mapped
	}
	return kind
}
