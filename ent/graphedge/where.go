// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSourceID, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldTargetID, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldWeight, v))
}

// TrajectoryCount applies equality check predicate on the "trajectory_count" field. It's identical to TrajectoryCountEQ.
func TrajectoryCount(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldTrajectoryCount, v))
}

// ContributorCount applies equality check predicate on the "contributor_count" field. It's identical to ContributorCountEQ.
func ContributorCount(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldContributorCount, v))
}

// RelationshipType applies equality check predicate on the "relationship_type" field. It's identical to RelationshipTypeEQ.
func RelationshipType(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRelationshipType, v))
}

// PositiveOutcomes applies equality check predicate on the "positive_outcomes" field. It's identical to PositiveOutcomesEQ.
func PositiveOutcomes(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldPositiveOutcomes, v))
}

// NegativeOutcomes applies equality check predicate on the "negative_outcomes" field. It's identical to NegativeOutcomesEQ.
func NegativeOutcomes(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldNegativeOutcomes, v))
}

// MixedOutcomes applies equality check predicate on the "mixed_outcomes" field. It's identical to MixedOutcomesEQ.
func MixedOutcomes(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldMixedOutcomes, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldLastSeen, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldSourceID, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldTargetID, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldWeight, v))
}

// TrajectoryCountEQ applies the EQ predicate on the "trajectory_count" field.
func TrajectoryCountEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountNEQ applies the NEQ predicate on the "trajectory_count" field.
func TrajectoryCountNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountIn applies the In predicate on the "trajectory_count" field.
func TrajectoryCountIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountNotIn applies the NotIn predicate on the "trajectory_count" field.
func TrajectoryCountNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountGT applies the GT predicate on the "trajectory_count" field.
func TrajectoryCountGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldTrajectoryCount, v))
}

// TrajectoryCountGTE applies the GTE predicate on the "trajectory_count" field.
func TrajectoryCountGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldTrajectoryCount, v))
}

// TrajectoryCountLT applies the LT predicate on the "trajectory_count" field.
func TrajectoryCountLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldTrajectoryCount, v))
}

// TrajectoryCountLTE applies the LTE predicate on the "trajectory_count" field.
func TrajectoryCountLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldTrajectoryCount, v))
}

// ContributorCountEQ applies the EQ predicate on the "contributor_count" field.
func ContributorCountEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldContributorCount, v))
}

// ContributorCountNEQ applies the NEQ predicate on the "contributor_count" field.
func ContributorCountNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldContributorCount, v))
}

// ContributorCountIn applies the In predicate on the "contributor_count" field.
func ContributorCountIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldContributorCount, vs...))
}

// ContributorCountNotIn applies the NotIn predicate on the "contributor_count" field.
func ContributorCountNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldContributorCount, vs...))
}

// ContributorCountGT applies the GT predicate on the "contributor_count" field.
func ContributorCountGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldContributorCount, v))
}

// ContributorCountGTE applies the GTE predicate on the "contributor_count" field.
func ContributorCountGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldContributorCount, v))
}

// ContributorCountLT applies the LT predicate on the "contributor_count" field.
func ContributorCountLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldContributorCount, v))
}

// ContributorCountLTE applies the LTE predicate on the "contributor_count" field.
func ContributorCountLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldContributorCount, v))
}

// RelationshipTypeEQ applies the EQ predicate on the "relationship_type" field.
func RelationshipTypeEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRelationshipType, v))
}

// RelationshipTypeNEQ applies the NEQ predicate on the "relationship_type" field.
func RelationshipTypeNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldRelationshipType, v))
}

// RelationshipTypeIn applies the In predicate on the "relationship_type" field.
func RelationshipTypeIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldRelationshipType, vs...))
}

// RelationshipTypeNotIn applies the NotIn predicate on the "relationship_type" field.
func RelationshipTypeNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldRelationshipType, vs...))
}

// RelationshipTypeGT applies the GT predicate on the "relationship_type" field.
func RelationshipTypeGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldRelationshipType, v))
}

// RelationshipTypeGTE applies the GTE predicate on the "relationship_type" field.
func RelationshipTypeGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldRelationshipType, v))
}

// RelationshipTypeLT applies the LT predicate on the "relationship_type" field.
func RelationshipTypeLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldRelationshipType, v))
}

// RelationshipTypeLTE applies the LTE predicate on the "relationship_type" field.
func RelationshipTypeLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldRelationshipType, v))
}

// RelationshipTypeContains applies the Contains predicate on the "relationship_type" field.
func RelationshipTypeContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldRelationshipType, v))
}

// RelationshipTypeHasPrefix applies the HasPrefix predicate on the "relationship_type" field.
func RelationshipTypeHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldRelationshipType, v))
}

// RelationshipTypeHasSuffix applies the HasSuffix predicate on the "relationship_type" field.
func RelationshipTypeHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldRelationshipType, v))
}

// RelationshipTypeIsNil applies the IsNil predicate on the "relationship_type" field.
func RelationshipTypeIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldRelationshipType))
}

// RelationshipTypeNotNil applies the NotNil predicate on the "relationship_type" field.
func RelationshipTypeNotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldRelationshipType))
}

// RelationshipTypeEqualFold applies the EqualFold predicate on the "relationship_type" field.
func RelationshipTypeEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldRelationshipType, v))
}

// RelationshipTypeContainsFold applies the ContainsFold predicate on the "relationship_type" field.
func RelationshipTypeContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldRelationshipType, v))
}

// PositiveOutcomesEQ applies the EQ predicate on the "positive_outcomes" field.
func PositiveOutcomesEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldPositiveOutcomes, v))
}

// PositiveOutcomesNEQ applies the NEQ predicate on the "positive_outcomes" field.
func PositiveOutcomesNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldPositiveOutcomes, v))
}

// PositiveOutcomesIn applies the In predicate on the "positive_outcomes" field.
func PositiveOutcomesIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldPositiveOutcomes, vs...))
}

// PositiveOutcomesNotIn applies the NotIn predicate on the "positive_outcomes" field.
func PositiveOutcomesNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldPositiveOutcomes, vs...))
}

// PositiveOutcomesGT applies the GT predicate on the "positive_outcomes" field.
func PositiveOutcomesGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldPositiveOutcomes, v))
}

// PositiveOutcomesGTE applies the GTE predicate on the "positive_outcomes" field.
func PositiveOutcomesGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldPositiveOutcomes, v))
}

// PositiveOutcomesLT applies the LT predicate on the "positive_outcomes" field.
func PositiveOutcomesLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldPositiveOutcomes, v))
}

// PositiveOutcomesLTE applies the LTE predicate on the "positive_outcomes" field.
func PositiveOutcomesLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldPositiveOutcomes, v))
}

// NegativeOutcomesEQ applies the EQ predicate on the "negative_outcomes" field.
func NegativeOutcomesEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldNegativeOutcomes, v))
}

// NegativeOutcomesNEQ applies the NEQ predicate on the "negative_outcomes" field.
func NegativeOutcomesNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldNegativeOutcomes, v))
}

// NegativeOutcomesIn applies the In predicate on the "negative_outcomes" field.
func NegativeOutcomesIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldNegativeOutcomes, vs...))
}

// NegativeOutcomesNotIn applies the NotIn predicate on the "negative_outcomes" field.
func NegativeOutcomesNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldNegativeOutcomes, vs...))
}

// NegativeOutcomesGT applies the GT predicate on the "negative_outcomes" field.
func NegativeOutcomesGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldNegativeOutcomes, v))
}

// NegativeOutcomesGTE applies the GTE predicate on the "negative_outcomes" field.
func NegativeOutcomesGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldNegativeOutcomes, v))
}

// NegativeOutcomesLT applies the LT predicate on the "negative_outcomes" field.
func NegativeOutcomesLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldNegativeOutcomes, v))
}

// NegativeOutcomesLTE applies the LTE predicate on the "negative_outcomes" field.
func NegativeOutcomesLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldNegativeOutcomes, v))
}

// MixedOutcomesEQ applies the EQ predicate on the "mixed_outcomes" field.
func MixedOutcomesEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldMixedOutcomes, v))
}

// MixedOutcomesNEQ applies the NEQ predicate on the "mixed_outcomes" field.
func MixedOutcomesNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldMixedOutcomes, v))
}

// MixedOutcomesIn applies the In predicate on the "mixed_outcomes" field.
func MixedOutcomesIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldMixedOutcomes, vs...))
}

// MixedOutcomesNotIn applies the NotIn predicate on the "mixed_outcomes" field.
func MixedOutcomesNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldMixedOutcomes, vs...))
}

// MixedOutcomesGT applies the GT predicate on the "mixed_outcomes" field.
func MixedOutcomesGT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldMixedOutcomes, v))
}

// MixedOutcomesGTE applies the GTE predicate on the "mixed_outcomes" field.
func MixedOutcomesGTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldMixedOutcomes, v))
}

// MixedOutcomesLT applies the LT predicate on the "mixed_outcomes" field.
func MixedOutcomesLT(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldMixedOutcomes, v))
}

// MixedOutcomesLTE applies the LTE predicate on the "mixed_outcomes" field.
func MixedOutcomesLTE(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldMixedOutcomes, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v int64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.NotPredicates(p))
}
