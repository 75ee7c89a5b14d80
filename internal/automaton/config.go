package automaton

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a scanner automaton: its states, transition table,
// character classes, and the word lists used for token reclassification.
// A Config is loaded once and treated as immutable afterwards.
type Config struct {
	StartState  string            `json:"start_state" yaml:"start_state"`
	FinalStates map[string]string `json:"final_states" yaml:"final_states"`
	CharClasses map[string]string `json:"char_classes" yaml:"char_classes"`
	Transitions [][]string        `json:"transitions" yaml:"transitions"`
	Keywords    []string          `json:"keywords" yaml:"keywords"`
	ReservedMap map[string]string `json:"reserved_map" yaml:"reserved_map"`
}

//go:embed dfa_rules.json
var defaultRules []byte

// DefaultConfig returns the built-in rule set.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultRules, "json")
	if err != nil {
		// The embedded rules ship with the binary; failing to parse them
		// is a build defect, not an input error.
		panic(fmt.Sprintf("embedded dfa rules are invalid: %v", err))
	}
	return cfg
}

// LoadConfig reads a rule file in JSON or YAML form, chosen by extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read dfa rules: %w", err)
	}

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes rule data in the given format ("json" or "yaml").
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	switch format {
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode dfa rules: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode dfa rules: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported dfa rules format %q", format)
	}
	return cfg, nil
}

// HyphenatedKeywords returns the keywords that can only be produced by
// re-joining an identifier-minus-identifier token run, i.e. the entries
// of the keyword list that contain a hyphen.
func (c Config) HyphenatedKeywords() map[string]bool {
	out := make(map[string]bool)
	for _, kw := range c.Keywords {
		if strings.Contains(kw, "-") {
			out[strings.ToLower(kw)] = true
		}
	}
	return out
}
