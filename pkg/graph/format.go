package graph

import (
	"fmt"
	"strings"

	"github.com/praxishq/praxis/pkg/models"
)

// FormatForAI renders a simulation result as the plain-text context block
// injected into the assistant prompt. The output is a pure function of the
// result: same input, byte-identical output. The wording is a contract with
// the prompt, not presentation.
func FormatForAI(result *models.SimulationResult) string {
	var b strings.Builder

	b.WriteString("Situation involves:\n")
	if len(result.Resolved) == 0 {
		b.WriteString("- (no known entities)\n")
	}
	for _, e := range result.Resolved {
		if e.EntityType != "" {
			fmt.Fprintf(&b, "- %s (%s, seen %d times)\n", e.Name, e.EntityType, e.TouchCount)
		} else {
			fmt.Fprintf(&b, "- %s (seen %d times)\n", e.Name, e.TouchCount)
		}
	}

	if len(result.Outcomes) > 0 {
		b.WriteString("\nObserved outcomes from similar situations:\n")
		for _, o := range result.Outcomes {
			fmt.Fprintf(&b, "- %s: %.0f%% (%d observations)\n", o.Name, o.Probability*100, o.Weight)
		}
	}

	if len(result.Differentiators) > 0 {
		b.WriteString("\nFactors that may influence outcomes:\n")
		for _, d := range result.Differentiators {
			fmt.Fprintf(&b, "- %s (%s) %s results (effect size %.2f, co-occurred %d times)\n",
				d.Name, d.Role, d.Effect, d.Magnitude, d.CooccurrenceStrength)
		}
	}

	if result.Evidence.TotalObservations < minObservations {
		b.WriteString("\nNote: very little recorded experience backs these patterns; treat them as hints, not conclusions.\n")
	}

	return b.String()
}
