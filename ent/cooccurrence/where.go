// Code generated by ent, DO NOT EDIT.

package cooccurrence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldContainsFold(FieldID, id))
}

// EntityAID applies equality check predicate on the "entity_a_id" field. It's identical to EntityAIDEQ.
func EntityAID(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldEntityAID, v))
}

// EntityBID applies equality check predicate on the "entity_b_id" field. It's identical to EntityBIDEQ.
func EntityBID(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldEntityBID, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldCount, v))
}

// WindowCount applies equality check predicate on the "window_count" field. It's identical to WindowCountEQ.
func WindowCount(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldWindowCount, v))
}

// TrajectoryCount applies equality check predicate on the "trajectory_count" field. It's identical to TrajectoryCountEQ.
func TrajectoryCount(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldTrajectoryCount, v))
}

// ContributorCount applies equality check predicate on the "contributor_count" field. It's identical to ContributorCountEQ.
func ContributorCount(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldContributorCount, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldLastUpdated, v))
}

// EntityAIDEQ applies the EQ predicate on the "entity_a_id" field.
func EntityAIDEQ(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldEntityAID, v))
}

// EntityAIDNEQ applies the NEQ predicate on the "entity_a_id" field.
func EntityAIDNEQ(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldEntityAID, v))
}

// EntityAIDIn applies the In predicate on the "entity_a_id" field.
func EntityAIDIn(vs ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldEntityAID, vs...))
}

// EntityAIDNotIn applies the NotIn predicate on the "entity_a_id" field.
func EntityAIDNotIn(vs ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldEntityAID, vs...))
}

// EntityAIDGT applies the GT predicate on the "entity_a_id" field.
func EntityAIDGT(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldEntityAID, v))
}

// EntityAIDGTE applies the GTE predicate on the "entity_a_id" field.
func EntityAIDGTE(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldEntityAID, v))
}

// EntityAIDLT applies the LT predicate on the "entity_a_id" field.
func EntityAIDLT(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldEntityAID, v))
}

// EntityAIDLTE applies the LTE predicate on the "entity_a_id" field.
func EntityAIDLTE(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldEntityAID, v))
}

// EntityAIDContains applies the Contains predicate on the "entity_a_id" field.
func EntityAIDContains(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldContains(FieldEntityAID, v))
}

// EntityAIDHasPrefix applies the HasPrefix predicate on the "entity_a_id" field.
func EntityAIDHasPrefix(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldHasPrefix(FieldEntityAID, v))
}

// EntityAIDHasSuffix applies the HasSuffix predicate on the "entity_a_id" field.
func EntityAIDHasSuffix(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldHasSuffix(FieldEntityAID, v))
}

// EntityAIDEqualFold applies the EqualFold predicate on the "entity_a_id" field.
func EntityAIDEqualFold(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEqualFold(FieldEntityAID, v))
}

// EntityAIDContainsFold applies the ContainsFold predicate on the "entity_a_id" field.
func EntityAIDContainsFold(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldContainsFold(FieldEntityAID, v))
}

// EntityBIDEQ applies the EQ predicate on the "entity_b_id" field.
func EntityBIDEQ(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldEntityBID, v))
}

// EntityBIDNEQ applies the NEQ predicate on the "entity_b_id" field.
func EntityBIDNEQ(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldEntityBID, v))
}

// EntityBIDIn applies the In predicate on the "entity_b_id" field.
func EntityBIDIn(vs ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldEntityBID, vs...))
}

// EntityBIDNotIn applies the NotIn predicate on the "entity_b_id" field.
func EntityBIDNotIn(vs ...string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldEntityBID, vs...))
}

// EntityBIDGT applies the GT predicate on the "entity_b_id" field.
func EntityBIDGT(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldEntityBID, v))
}

// EntityBIDGTE applies the GTE predicate on the "entity_b_id" field.
func EntityBIDGTE(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldEntityBID, v))
}

// EntityBIDLT applies the LT predicate on the "entity_b_id" field.
func EntityBIDLT(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldEntityBID, v))
}

// EntityBIDLTE applies the LTE predicate on the "entity_b_id" field.
func EntityBIDLTE(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldEntityBID, v))
}

// EntityBIDContains applies the Contains predicate on the "entity_b_id" field.
func EntityBIDContains(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldContains(FieldEntityBID, v))
}

// EntityBIDHasPrefix applies the HasPrefix predicate on the "entity_b_id" field.
func EntityBIDHasPrefix(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldHasPrefix(FieldEntityBID, v))
}

// EntityBIDHasSuffix applies the HasSuffix predicate on the "entity_b_id" field.
func EntityBIDHasSuffix(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldHasSuffix(FieldEntityBID, v))
}

// EntityBIDEqualFold applies the EqualFold predicate on the "entity_b_id" field.
func EntityBIDEqualFold(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEqualFold(FieldEntityBID, v))
}

// EntityBIDContainsFold applies the ContainsFold predicate on the "entity_b_id" field.
func EntityBIDContainsFold(v string) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldContainsFold(FieldEntityBID, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldCount, v))
}

// WindowCountEQ applies the EQ predicate on the "window_count" field.
func WindowCountEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldWindowCount, v))
}

// WindowCountNEQ applies the NEQ predicate on the "window_count" field.
func WindowCountNEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldWindowCount, v))
}

// WindowCountIn applies the In predicate on the "window_count" field.
func WindowCountIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldWindowCount, vs...))
}

// WindowCountNotIn applies the NotIn predicate on the "window_count" field.
func WindowCountNotIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldWindowCount, vs...))
}

// WindowCountGT applies the GT predicate on the "window_count" field.
func WindowCountGT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldWindowCount, v))
}

// WindowCountGTE applies the GTE predicate on the "window_count" field.
func WindowCountGTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldWindowCount, v))
}

// WindowCountLT applies the LT predicate on the "window_count" field.
func WindowCountLT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldWindowCount, v))
}

// WindowCountLTE applies the LTE predicate on the "window_count" field.
func WindowCountLTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldWindowCount, v))
}

// TrajectoryCountEQ applies the EQ predicate on the "trajectory_count" field.
func TrajectoryCountEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountNEQ applies the NEQ predicate on the "trajectory_count" field.
func TrajectoryCountNEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountIn applies the In predicate on the "trajectory_count" field.
func TrajectoryCountIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountNotIn applies the NotIn predicate on the "trajectory_count" field.
func TrajectoryCountNotIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountGT applies the GT predicate on the "trajectory_count" field.
func TrajectoryCountGT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldTrajectoryCount, v))
}

// TrajectoryCountGTE applies the GTE predicate on the "trajectory_count" field.
func TrajectoryCountGTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldTrajectoryCount, v))
}

// TrajectoryCountLT applies the LT predicate on the "trajectory_count" field.
func TrajectoryCountLT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldTrajectoryCount, v))
}

// TrajectoryCountLTE applies the LTE predicate on the "trajectory_count" field.
func TrajectoryCountLTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldTrajectoryCount, v))
}

// ContributorCountEQ applies the EQ predicate on the "contributor_count" field.
func ContributorCountEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldContributorCount, v))
}

// ContributorCountNEQ applies the NEQ predicate on the "contributor_count" field.
func ContributorCountNEQ(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldContributorCount, v))
}

// ContributorCountIn applies the In predicate on the "contributor_count" field.
func ContributorCountIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldContributorCount, vs...))
}

// ContributorCountNotIn applies the NotIn predicate on the "contributor_count" field.
func ContributorCountNotIn(vs ...int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldContributorCount, vs...))
}

// ContributorCountGT applies the GT predicate on the "contributor_count" field.
func ContributorCountGT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldContributorCount, v))
}

// ContributorCountGTE applies the GTE predicate on the "contributor_count" field.
func ContributorCountGTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldContributorCount, v))
}

// ContributorCountLT applies the LT predicate on the "contributor_count" field.
func ContributorCountLT(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldContributorCount, v))
}

// ContributorCountLTE applies the LTE predicate on the "contributor_count" field.
func ContributorCountLTE(v int) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldContributorCount, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v int64) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cooccurrence) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cooccurrence) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cooccurrence) predicate.Cooccurrence {
	return predicate.Cooccurrence(sql.NotPredicates(p))
}
