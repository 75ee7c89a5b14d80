package automaton

import (
	"fmt"
	"regexp"

	"pascals/internal/token"
)

type transitionKey struct {
	state  string
	symbol string
}

// classEdge is a fallback transition whose input symbol is a named
// character class rather than a literal character.
type classEdge struct {
	from  string
	class string
	to    string
}

// DFA simulates the configured automaton one character at a time.
// Literal transitions are preferred; when none applies, the class edges
// leaving the current state are probed in configuration order. Only one
// class is expected to match per state — overlaps are a configuration
// smell flagged by Validate, not resolved here.
type DFA struct {
	start   string
	finals  map[string]token.Kind
	classes map[string]*regexp.Regexp
	exact   map[transitionKey]string
	edges   []classEdge

	state string
}

// New compiles a Config into a runnable DFA. Structural validation is
// Validate's job; New only rejects what it cannot represent at all
// (unknown token kind names, malformed class patterns).
func New(cfg Config) (*DFA, error) {
	d := &DFA{
		start:   cfg.StartState,
		finals:  make(map[string]token.Kind, len(cfg.FinalStates)),
		classes: make(map[string]*regexp.Regexp, len(cfg.CharClasses)),
		exact:   make(map[transitionKey]string, len(cfg.Transitions)),
		state:   cfg.StartState,
	}

	for state, kindName := range cfg.FinalStates {
		kind, ok := token.KindFromName(kindName)
		if !ok {
			return nil, fmt.Errorf("final state %q maps to unknown token kind %q", state, kindName)
		}
		d.finals[state] = kind
	}

	for name, pattern := range cfg.CharClasses {
		// Anchored: a class predicate matches single characters, not substrings.
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("char class %q: %w", name, err)
		}
		d.classes[name] = re
	}

	for _, t := range cfg.Transitions {
		if len(t) != 3 {
			return nil, fmt.Errorf("transition %v is not a (from, symbol, to) triple", t)
		}
		from, sym, to := t[0], t[1], t[2]
		if _, isClass := d.classes[sym]; isClass {
			d.edges = append(d.edges, classEdge{from: from, class: sym, to: to})
		} else {
			d.exact[transitionKey{state: from, symbol: sym}] = to
		}
	}

	return d, nil
}

// Reset returns the automaton to its start state.
func (d *DFA) Reset() {
	d.state = d.start
}

// State returns the current state name.
func (d *DFA) State() string {
	return d.state
}

// Step consumes one character. It returns the new state and true if a
// transition applied; otherwise the state is left unchanged.
func (d *DFA) Step(ch byte) (string, bool) {
	if next, ok := d.lookup(ch); ok {
		d.state = next
		return next, true
	}
	return d.state, false
}

// CanTransition reports whether Step would succeed for ch, without
// mutating the automaton.
func (d *DFA) CanTransition(ch byte) bool {
	_, ok := d.lookup(ch)
	return ok
}

// TokenKind returns the token kind of the current state if it is final.
func (d *DFA) TokenKind() (token.Kind, bool) {
	kind, ok := d.finals[d.state]
	return kind, ok
}

// IsFinal reports whether the named state is accepting.
func (d *DFA) IsFinal(state string) bool {
	_, ok := d.finals[state]
	return ok
}

func (d *DFA) lookup(ch byte) (string, bool) {
	if next, ok := d.exact[transitionKey{state: d.state, symbol: string(ch)}]; ok {
		return next, true
	}
	for _, e := range d.edges {
		if e.from != d.state {
			continue
		}
		if d.classes[e.class].Match([]byte{ch}) {
			return e.to, true
		}
	}
	return "", false
}
