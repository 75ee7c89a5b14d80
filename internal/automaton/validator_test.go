package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectWarnings(warnings *[]string) WarnFunc {
	return func(msg string) {
		*warnings = append(*warnings, msg)
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	var warnings []string
	report, err := Validate(DefaultConfig(), collectWarnings(&warnings))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Empty(t, report.UnreachableStates)
	assert.Empty(t, report.DeadStates)
	assert.Contains(t, report.ReachableStates, "START")
	assert.Contains(t, report.ReachableStates, "IDENT")
}

func TestValidateRejectsEmptyStartState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartState = ""

	_, err := Validate(cfg, collectWarnings(&[]string{}))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "start_state")
}

func TestValidateRejectsEmptyTransitions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transitions = nil

	_, err := Validate(cfg, collectWarnings(&[]string{}))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsMalformedTransition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transitions = append(cfg.Transitions, []string{"START", "x"})

	_, err := Validate(cfg, collectWarnings(&[]string{}))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "triple")
}

func TestValidateRejectsEmptyTransitionPart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transitions = append(cfg.Transitions, []string{"START", "", "IDENT"})

	_, err := Validate(cfg, collectWarnings(&[]string{}))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsBadCharClassPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CharClasses["BROKEN"] = "["

	_, err := Validate(cfg, collectWarnings(&[]string{}))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "BROKEN")
}

func TestValidateWarnsAboutDeadStates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transitions = append(cfg.Transitions, []string{"START", "~", "SINK"})

	var warnings []string
	report, err := Validate(cfg, collectWarnings(&warnings))
	require.NoError(t, err)

	assert.Contains(t, report.DeadStates, "SINK")
	assert.NotEmpty(t, warnings)
}

func TestValidateWarnsAboutUnreachableStates(t *testing.T) {
	cfg := DefaultConfig()
	// LOST has an edge into a live state but nothing reaches it.
	cfg.Transitions = append(cfg.Transitions, []string{"LOST", "~", "IDENT"})

	var warnings []string
	report, err := Validate(cfg, collectWarnings(&warnings))
	require.NoError(t, err)

	assert.Contains(t, report.UnreachableStates, "LOST")
	assert.NotEmpty(t, warnings)
}

func TestValidateReportsCharClassOverlaps(t *testing.T) {
	cfg := DefaultConfig()
	// STRING_CHAR matches almost everything except the quote, so it
	// overlaps LETTER by construction.
	var warnings []string
	report, err := Validate(cfg, collectWarnings(&warnings))
	require.NoError(t, err)

	assert.NotEmpty(t, report.CharClassOverlaps)
}
