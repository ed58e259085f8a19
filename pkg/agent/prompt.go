package agent

import (
	"strings"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/pkg/llm"
)

// systemPrompt anchors the assistant's role and the tag markup contract. The
// [[type:name]] instructions are load-bearing: the graph only grows from what
// the model marks up.
const systemPrompt = `You are a pedagogical content knowledge assistant. You help teachers reason
about what to teach, how to teach it, and why particular approaches work or
fail for particular learners.

When you mention a teaching-relevant entity, mark it up inline as
[[type:name]], for example [[topic:equivalent fractions]],
[[strategy:think-pair-share]], [[misconception:adding denominators]],
[[outcome:improved understanding]]. Valid types: topic, misconception,
strategy, context, constraint, outcome, concept. Use topic for subject matter
and concept for underlying ideas. Mark up every entity you discuss, including
ones the teacher already mentioned.

Be concrete and practical. Ground advice in what is known about how students
learn the specific content at hand.`

// BuildMessages assembles the LLM conversation for one turn: system prompt,
// optional simulation context, prior history, then the new user message.
func BuildMessages(history []*ent.Message, userMessage, simulationContext string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})

	if simulationContext != "" {
		var b strings.Builder
		b.WriteString("Patterns observed across recorded teaching trajectories:\n\n")
		b.WriteString(simulationContext)
		b.WriteString("\nUse these patterns to inform your advice where relevant, but weigh them against the specifics the teacher describes.")
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: b.String()})
	}

	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		} else if m.Role == "system" {
			role = llm.RoleSystem
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})
	return messages
}
