package tagparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMentions(t *testing.T) {
	t.Run("typed tags", func(t *testing.T) {
		mentions := ExtractMentions("Teaching [[topic:Fractions]] with [[strategy:Visual Models]]")
		require.Len(t, mentions, 2)
		assert.Equal(t, Mention{Type: "topic", Name: "fractions"}, mentions[0])
		assert.Equal(t, Mention{Type: "strategy", Name: "visual models"}, mentions[1])
	})

	t.Run("untyped fallback defaults to topic", func(t *testing.T) {
		mentions := ExtractMentions("Struggling with [[equivalent fractions]] today")
		require.Len(t, mentions, 1)
		assert.Equal(t, Mention{Type: "topic", Name: "equivalent fractions"}, mentions[0])
	})

	t.Run("typed span not double-counted by untyped pass", func(t *testing.T) {
		mentions := ExtractMentions("[[strategy:number line]] and [[number line]]")
		require.Len(t, mentions, 2)
		assert.Equal(t, "strategy", mentions[0].Type)
		assert.Equal(t, "topic", mentions[1].Type)
		assert.Equal(t, mentions[0].Name, mentions[1].Name)
	})

	t.Run("deduplicates by type and name", func(t *testing.T) {
		mentions := ExtractMentions("[[topic:fractions]] again [[topic: Fractions ]] and [[fractions]]")
		// Typed pair collapses; the untyped mention is a distinct (type, name)
		// only when the typed one had a different type.
		require.Len(t, mentions, 1)
		assert.Equal(t, Mention{Type: "topic", Name: "fractions"}, mentions[0])
	})

	t.Run("unknown type retained verbatim", func(t *testing.T) {
		mentions := ExtractMentions("[[resource:fraction tiles]]")
		require.Len(t, mentions, 1)
		assert.Equal(t, "resource", mentions[0].Type)
	})

	t.Run("no tags", func(t *testing.T) {
		assert.Empty(t, ExtractMentions("plain prose with no markup"))
	})

	t.Run("empty name dropped", func(t *testing.T) {
		assert.Empty(t, ExtractMentions("[[topic:   ]]"))
	})

	t.Run("round trip is stable", func(t *testing.T) {
		mentions := ExtractMentions("[[strategy:Think-Pair-Share]] for [[topic:ratios]]")
		var rebuilt string
		for _, m := range mentions {
			rebuilt += fmt.Sprintf("[[%s:%s]] ", m.Type, m.Name)
		}
		assert.Equal(t, mentions, ExtractMentions(rebuilt))
	})
}

func TestExtractDecisionContext(t *testing.T) {
	t.Run("nil when no cues", func(t *testing.T) {
		assert.Nil(t, ExtractDecisionContext("teach fractions with tiles"))
	})

	t.Run("rationale and expected outcome", func(t *testing.T) {
		dc := ExtractDecisionContext(
			"I want them to see equivalence because the test is next week.")
		require.NotNil(t, dc)
		assert.Equal(t, "see equivalence because the test is next week", dc.ExpectedOutcome)
		assert.Equal(t, "the test is next week", dc.Rationale)
	})

	t.Run("observations and constraints accumulate", func(t *testing.T) {
		dc := ExtractDecisionContext(
			"I noticed students mixing up numerators. I only have 30 minutes. Students seem tired.")
		require.NotNil(t, dc)
		assert.Len(t, dc.Observations, 2)
		require.Len(t, dc.Constraints, 1)
		assert.Equal(t, "30 minutes", dc.Constraints[0])
	})

	t.Run("trigger and prior experience", func(t *testing.T) {
		dc := ExtractDecisionContext(
			"Whenever we do word problems they freeze. Last time I tried manipulatives it helped.")
		require.NotNil(t, dc)
		assert.NotEmpty(t, dc.Trigger)
		assert.NotEmpty(t, dc.PriorExperience)
	})

	t.Run("markup stripped from captured clause", func(t *testing.T) {
		dc := ExtractDecisionContext("because [[strategy:visual models]] worked before.")
		require.NotNil(t, dc)
		assert.Equal(t, "visual models worked before", dc.Rationale)
	})
}
