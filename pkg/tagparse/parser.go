// Package tagparse extracts typed entity mentions and weak decision-context
// cues from free chat text.
//
// Entity mentions use double-bracket markup: [[strategy:think-pair-share]] or
// the untyped shorthand [[fractions]]. Matching is purely lexical: names are
// lower-cased and trimmed, never semantically resolved here.
package tagparse

import (
	"regexp"
	"strings"
)

// Entity types with first-class meaning to the graph engine. Mentions with a
// type outside this set keep their type verbatim; it becomes the entity_type
// of the created entity.
const (
	TypeTopic         = "topic"
	TypeMisconception = "misconception"
	TypeStrategy      = "strategy"
	TypeContext       = "context"
	TypeConstraint    = "constraint"
	TypeOutcome       = "outcome"
	TypeConcept       = "concept"
)

// Mention is one extracted entity reference.
type Mention struct {
	// Type is the lower-cased tag type; "topic" for untyped mentions.
	Type string
	// Name is the lower-cased, trimmed entity name.
	Name string
}

var (
	typedTagRe   = regexp.MustCompile(`\[\[([A-Za-z_][A-Za-z0-9_]*):([^\]]+)\]\]`)
	untypedTagRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	typePrefixRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*:`)
)

// ExtractMentions runs the typed pass then the untyped fallback over text and
// returns mentions deduplicated by (type, name) in first-occurrence order.
// A span matched by the typed pass is never revisited by the untyped pass.
func ExtractMentions(text string) []Mention {
	var mentions []Mention
	seen := make(map[Mention]bool)

	add := func(m Mention) {
		if m.Name == "" || seen[m] {
			return
		}
		seen[m] = true
		mentions = append(mentions, m)
	}

	for _, match := range typedTagRe.FindAllStringSubmatch(text, -1) {
		add(Mention{
			Type: strings.ToLower(match[1]),
			Name: normalize(match[2]),
		})
	}

	for _, match := range untypedTagRe.FindAllStringSubmatch(text, -1) {
		if typePrefixRe.MatchString(match[1]) {
			// Typed span, already handled above.
			continue
		}
		add(Mention{
			Type: TypeTopic,
			Name: normalize(match[1]),
		})
	}

	return mentions
}

// normalize lower-cases and trims an entity name. The result is the
// normalized_name identity key used by find-or-create.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Normalize exposes the mention normalization rule for callers that accept
// entity names outside tag markup (e.g. the simulate endpoint).
func Normalize(name string) string {
	return normalize(name)
}
