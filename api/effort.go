package api

import (
	"fmt"
	"strings"
)

// ReasoningEffort tells the model how much work to spend before answering.
type ReasoningEffort int

const (
	EffortMinimal ReasoningEffort = iota
	EffortLow
	EffortMedium
	EffortHigh
)

var effortValues = [...]string{
	EffortMinimal: "minimal",
	EffortLow:     "low",
	EffortMedium:  "medium",
	EffortHigh:    "high",
}

// ReasoningEfforts returns every effort level, lowest first.
func ReasoningEfforts() []ReasoningEffort {
	return []ReasoningEffort{EffortMinimal, EffortLow, EffortMedium, EffortHigh}
}

// ParseReasoningEffort maps a wire value (case-insensitive) to its effort level.
func ParseReasoningEffort(value string) (ReasoningEffort, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, effort := range ReasoningEfforts() {
		if effortValues[effort] == normalized {
			return effort, nil
		}
	}

	return 0, fmt.Errorf("invalid reasoning effort %q (expected one of %s)", value, strings.Join(effortValues[:], ", "))
}

// String returns the lowercase wire value.
func (e ReasoningEffort) String() string {
	if e < EffortMinimal || e > EffortHigh {
		return fmt.Sprintf("ReasoningEffort(%d)", int(e))
	}
	return effortValues[e]
}

func (e ReasoningEffort) MarshalText() ([]byte, error) {
	if e < EffortMinimal || e > EffortHigh {
		return nil, fmt.Errorf("invalid reasoning effort %d", int(e))
	}
	return []byte(effortValues[e]), nil
}

func (e *ReasoningEffort) UnmarshalText(text []byte) error {
	parsed, err := ParseReasoningEffort(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
