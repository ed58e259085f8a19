// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contributionFields := schema.Contribution{}.Fields()
	_ = contributionFields
	// contributionDescTouchCount is the schema descriptor for touch_count field.
	contributionDescTouchCount := contributionFields[4].Descriptor()
	// contribution.DefaultTouchCount holds the default value on creation for the touch_count field.
	contribution.DefaultTouchCount = contributionDescTouchCount.Default.(int)
	// contributionDescTrajectoryCount is the schema descriptor for trajectory_count field.
	contributionDescTrajectoryCount := contributionFields[5].Descriptor()
	// contribution.DefaultTrajectoryCount holds the default value on creation for the trajectory_count field.
	contribution.DefaultTrajectoryCount = contributionDescTrajectoryCount.Default.(int)
	cooccurrenceFields := schema.Cooccurrence{}.Fields()
	_ = cooccurrenceFields
	// cooccurrenceDescCount is the schema descriptor for count field.
	cooccurrenceDescCount := cooccurrenceFields[3].Descriptor()
	// cooccurrence.DefaultCount holds the default value on creation for the count field.
	cooccurrence.DefaultCount = cooccurrenceDescCount.Default.(int)
	// cooccurrenceDescWindowCount is the schema descriptor for window_count field.
	cooccurrenceDescWindowCount := cooccurrenceFields[4].Descriptor()
	// cooccurrence.DefaultWindowCount holds the default value on creation for the window_count field.
	cooccurrence.DefaultWindowCount = cooccurrenceDescWindowCount.Default.(int)
	// cooccurrenceDescTrajectoryCount is the schema descriptor for trajectory_count field.
	cooccurrenceDescTrajectoryCount := cooccurrenceFields[5].Descriptor()
	// cooccurrence.DefaultTrajectoryCount holds the default value on creation for the trajectory_count field.
	cooccurrence.DefaultTrajectoryCount = cooccurrenceDescTrajectoryCount.Default.(int)
	// cooccurrenceDescContributorCount is the schema descriptor for contributor_count field.
	cooccurrenceDescContributorCount := cooccurrenceFields[6].Descriptor()
	// cooccurrence.DefaultContributorCount holds the default value on creation for the contributor_count field.
	cooccurrence.DefaultContributorCount = cooccurrenceDescContributorCount.Default.(int)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescTouchCount is the schema descriptor for touch_count field.
	entityDescTouchCount := entityFields[5].Descriptor()
	// entity.DefaultTouchCount holds the default value on creation for the touch_count field.
	entity.DefaultTouchCount = entityDescTouchCount.Default.(int)
	// entityDescTrajectoryCount is the schema descriptor for trajectory_count field.
	entityDescTrajectoryCount := entityFields[6].Descriptor()
	// entity.DefaultTrajectoryCount holds the default value on creation for the trajectory_count field.
	entity.DefaultTrajectoryCount = entityDescTrajectoryCount.Default.(int)
	// entityDescContributorCount is the schema descriptor for contributor_count field.
	entityDescContributorCount := entityFields[7].Descriptor()
	// entity.DefaultContributorCount holds the default value on creation for the contributor_count field.
	entity.DefaultContributorCount = entityDescContributorCount.Default.(int)
	graphedgeFields := schema.GraphEdge{}.Fields()
	_ = graphedgeFields
	// graphedgeDescWeight is the schema descriptor for weight field.
	graphedgeDescWeight := graphedgeFields[3].Descriptor()
	// graphedge.DefaultWeight holds the default value on creation for the weight field.
	graphedge.DefaultWeight = graphedgeDescWeight.Default.(int)
	// graphedgeDescTrajectoryCount is the schema descriptor for trajectory_count field.
	graphedgeDescTrajectoryCount := graphedgeFields[4].Descriptor()
	// graphedge.DefaultTrajectoryCount holds the default value on creation for the trajectory_count field.
	graphedge.DefaultTrajectoryCount = graphedgeDescTrajectoryCount.Default.(int)
	// graphedgeDescContributorCount is the schema descriptor for contributor_count field.
	graphedgeDescContributorCount := graphedgeFields[5].Descriptor()
	// graphedge.DefaultContributorCount holds the default value on creation for the contributor_count field.
	graphedge.DefaultContributorCount = graphedgeDescContributorCount.Default.(int)
	// graphedgeDescPositiveOutcomes is the schema descriptor for positive_outcomes field.
	graphedgeDescPositiveOutcomes := graphedgeFields[7].Descriptor()
	// graphedge.DefaultPositiveOutcomes holds the default value on creation for the positive_outcomes field.
	graphedge.DefaultPositiveOutcomes = graphedgeDescPositiveOutcomes.Default.(int)
	// graphedgeDescNegativeOutcomes is the schema descriptor for negative_outcomes field.
	graphedgeDescNegativeOutcomes := graphedgeFields[8].Descriptor()
	// graphedge.DefaultNegativeOutcomes holds the default value on creation for the negative_outcomes field.
	graphedge.DefaultNegativeOutcomes = graphedgeDescNegativeOutcomes.Default.(int)
	// graphedgeDescMixedOutcomes is the schema descriptor for mixed_outcomes field.
	graphedgeDescMixedOutcomes := graphedgeFields[9].Descriptor()
	// graphedge.DefaultMixedOutcomes holds the default value on creation for the mixed_outcomes field.
	graphedge.DefaultMixedOutcomes = graphedgeDescMixedOutcomes.Default.(int)
}
