package automaton

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// ConfigError reports a rule-file defect that would break scanning.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid dfa config: " + e.Message
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// WarnFunc receives non-fatal findings during validation.
type WarnFunc func(msg string)

func defaultWarn(msg string) {
	// stderr only, so token output on stdout stays byte-identical.
	fmt.Fprintf(os.Stderr, "[dfa validator] %s\n", msg)
}

// Report summarizes a validation run. Unreachable and dead states are
// legal (sink states exist on purpose) and therefore warn-only.
type Report struct {
	States            []string
	ReachableStates   []string
	UnreachableStates []string
	DeadStates        []string
	CharClassOverlaps []string
}

// Validate checks a Config for structural defects. Critical problems
// (empty start state, unknown state references, malformed class patterns)
// return a ConfigError; reachability, dead-state, and class-overlap
// findings are reported through warn and collected in the Report.
func Validate(cfg Config, warn WarnFunc) (*Report, error) {
	if warn == nil {
		warn = defaultWarn
	}

	if cfg.StartState == "" {
		return nil, configErrorf("start_state must be a non-empty string")
	}
	if len(cfg.FinalStates) == 0 {
		return nil, configErrorf("final_states must be a non-empty map of state to token kind")
	}
	if len(cfg.Transitions) == 0 {
		return nil, configErrorf("transitions must be a non-empty list of (from, symbol, to) triples")
	}

	for i, t := range cfg.Transitions {
		if len(t) != 3 {
			return nil, configErrorf("transition at index %d must be a triple, got %v", i, t)
		}
		for _, part := range t {
			if part == "" {
				return nil, configErrorf("transition at index %d contains an empty string: %v", i, t)
			}
		}
	}

	states := inferStates(cfg)

	for fs := range cfg.FinalStates {
		if !states[fs] {
			return nil, configErrorf("final state %q is not included in inferred states", fs)
		}
	}

	compiled := make(map[string]*regexp.Regexp, len(cfg.CharClasses))
	for name, pattern := range cfg.CharClasses {
		if name == "" {
			return nil, configErrorf("char_classes contains an empty class name")
		}
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			return nil, configErrorf("invalid pattern for char class %q: %v", name, err)
		}
		compiled[name] = re
	}

	for i, t := range cfg.Transitions {
		from, sym, to := t[0], t[1], t[2]
		if !states[from] {
			return nil, configErrorf("transition %d references unknown from-state %q", i, from)
		}
		if !states[to] {
			return nil, configErrorf("transition %d references unknown to-state %q", i, to)
		}
		if _, isClass := compiled[sym]; !isClass && len(sym) != 1 {
			warn(fmt.Sprintf("transition %d uses literal symbol %q with length != 1 (allowed but unusual)", i, sym))
		}
	}

	reachable := reachableStates(cfg.StartState, cfg.Transitions)
	unreachable := subtract(states, reachable)
	if len(unreachable) > 0 {
		warn(fmt.Sprintf("unreachable states detected: %v", unreachable))
	}

	dead := deadStates(states, cfg.FinalStates, cfg.Transitions)
	if len(dead) > 0 {
		warn(fmt.Sprintf("dead states (cannot reach any final state) detected: %v", dead))
	}

	overlaps := detectClassOverlaps(compiled)
	for _, line := range overlaps {
		warn(line)
	}

	return &Report{
		States:            sortedKeys(states),
		ReachableStates:   sortedKeys(reachable),
		UnreachableStates: unreachable,
		DeadStates:        dead,
		CharClassOverlaps: overlaps,
	}, nil
}

func inferStates(cfg Config) map[string]bool {
	states := map[string]bool{cfg.StartState: true}
	for fs := range cfg.FinalStates {
		states[fs] = true
	}
	for _, t := range cfg.Transitions {
		if len(t) == 3 {
			states[t[0]] = true
			states[t[2]] = true
		}
	}
	return states
}

// Reachability is purely graph-based over states; input symbols do not
// affect it.
func reachableStates(start string, transitions [][]string) map[string]bool {
	graph := make(map[string][]string)
	for _, t := range transitions {
		graph[t[0]] = append(graph[t[0]], t[2])
	}

	seen := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		stack = append(stack, graph[s]...)
	}
	return seen
}

// A dead state cannot reach any final state in the state graph.
func deadStates(states map[string]bool, finals map[string]string, transitions [][]string) []string {
	reverse := make(map[string][]string)
	for _, t := range transitions {
		reverse[t[2]] = append(reverse[t[2]], t[0])
	}

	canReach := make(map[string]bool)
	stack := make([]string, 0, len(finals))
	for fs := range finals {
		stack = append(stack, fs)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if canReach[s] {
			continue
		}
		canReach[s] = true
		stack = append(stack, reverse[s]...)
	}

	return subtract(states, canReach)
}

// detectClassOverlaps samples the ASCII range and reports every pair of
// classes that both match some character. Warning-only: overlap does not
// break scanning as long as at most one class edge leaves each state for
// a given character.
func detectClassOverlaps(classes map[string]*regexp.Regexp) []string {
	if len(classes) == 0 {
		return nil
	}

	names := sortedKeys(boolKeys(classes))
	overlaps := make(map[[2]string][]string)

	for code := 0; code <= 127; code++ {
		ch := byte(code)
		var matched []string
		for _, name := range names {
			if classes[name].Match([]byte{ch}) {
				matched = append(matched, name)
			}
		}
		for i := 0; i < len(matched); i++ {
			for j := i + 1; j < len(matched); j++ {
				key := [2]string{matched[i], matched[j]}
				overlaps[key] = append(overlaps[key], prettyChar(ch))
			}
		}
	}

	keys := make([][2]string, 0, len(overlaps))
	for k := range overlaps {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	var lines []string
	for _, key := range keys {
		chars := overlaps[key]
		sample := strings.Join(chars[:min(10, len(chars))], ", ")
		extra := ""
		if len(chars) > 10 {
			extra = fmt.Sprintf(" (+%d more)", len(chars)-10)
		}
		lines = append(lines, fmt.Sprintf("char class overlap between %q and %q on: %s%s", key[0], key[1], sample, extra))
	}
	return lines
}

func prettyChar(ch byte) string {
	switch ch {
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case ' ':
		return `' '`
	case '\'':
		return `'\''`
	}
	if ch >= 0x21 && ch < 0x7f {
		return fmt.Sprintf("'%c'", ch)
	}
	return fmt.Sprintf(`'\x%02x'`, ch)
}

func subtract(all, remove map[string]bool) []string {
	var out []string
	for s := range all {
		if !remove[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func boolKeys(m map[string]*regexp.Regexp) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}
