package tagparse

import (
	"regexp"
	"strings"
)

// DecisionContext carries weak cues about the teaching decision described in a
// message. It is advisory: the orchestrator serialises it under the event
// data's _context key for the UI, and nothing in the graph depends on it.
type DecisionContext struct {
	Trigger         string   `json:"trigger,omitempty"`
	Observations    []string `json:"observations,omitempty"`
	Constraints     []string `json:"constraints,omitempty"`
	ExpectedOutcome string   `json:"expectedOutcome,omitempty"`
	Rationale       string   `json:"rationale,omitempty"`
	PriorExperience string   `json:"priorExperience,omitempty"`
}

// IsEmpty reports whether no cue family matched.
func (d *DecisionContext) IsEmpty() bool {
	return d.Trigger == "" &&
		len(d.Observations) == 0 &&
		len(d.Constraints) == 0 &&
		d.ExpectedOutcome == "" &&
		d.Rationale == "" &&
		d.PriorExperience == ""
}

// Pattern families. Each captures the rest of the clause (up to a sentence
// boundary). Case-insensitive; first match wins for the scalar families.
var (
	triggerRe = regexp.MustCompile(
		`(?i)\b(?:when(?:ever)?|every time|each time)\s+([^.!?\n]+)`)
	observationRe = regexp.MustCompile(
		`(?i)\b(?:i(?:'ve)? noticed|i observed|i(?:'ve)? seen|i see|students (?:are|seem|keep|struggle with))\s*([^.!?\n]+)`)
	constraintRe = regexp.MustCompile(
		`(?i)\b(?:only (?:have|has|get)|can(?:'|n)?ot|can't|no more than|limited to|short on|don't have)\s+([^.!?\n]+)`)
	expectedOutcomeRe = regexp.MustCompile(
		`(?i)\b(?:hoping (?:that|to|for)?|i expect(?:ing)?|want(?:ing)? (?:them|students) to|the goal is|so that)\s*([^.!?\n]+)`)
	rationaleRe = regexp.MustCompile(
		`(?i)\b(?:because|since|due to)\s+([^.!?\n]+)`)
	priorExperienceRe = regexp.MustCompile(
		`(?i)\b(?:last (?:time|year|term)|previously|in the past|i(?:'ve)? tried)\s*,?\s*([^.!?\n]+)`)
)

// ExtractDecisionContext runs the cue pattern families over text. Returns nil
// when nothing matched.
func ExtractDecisionContext(text string) *DecisionContext {
	dc := &DecisionContext{}

	if m := triggerRe.FindStringSubmatch(text); m != nil {
		dc.Trigger = clean(m[1])
	}
	for _, m := range observationRe.FindAllStringSubmatch(text, -1) {
		if c := clean(m[1]); c != "" {
			dc.Observations = append(dc.Observations, c)
		}
	}
	for _, m := range constraintRe.FindAllStringSubmatch(text, -1) {
		if c := clean(m[1]); c != "" {
			dc.Constraints = append(dc.Constraints, c)
		}
	}
	if m := expectedOutcomeRe.FindStringSubmatch(text); m != nil {
		dc.ExpectedOutcome = clean(m[1])
	}
	if m := rationaleRe.FindStringSubmatch(text); m != nil {
		dc.Rationale = clean(m[1])
	}
	if m := priorExperienceRe.FindStringSubmatch(text); m != nil {
		dc.PriorExperience = clean(m[1])
	}

	if dc.IsEmpty() {
		return nil
	}
	return dc
}

// clean strips tag markup and surrounding whitespace from a captured clause so
// the advisory text reads naturally.
func clean(s string) string {
	s = typedTagRe.ReplaceAllString(s, "$2")
	s = untypedTagRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
