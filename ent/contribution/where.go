// Code generated by ent, DO NOT EDIT.

package contribution

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContainsFold(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldEntityID, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldAccountID, v))
}

// FirstTrajectoryID applies equality check predicate on the "first_trajectory_id" field. It's identical to FirstTrajectoryIDEQ.
func FirstTrajectoryID(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldFirstTrajectoryID, v))
}

// TouchCount applies equality check predicate on the "touch_count" field. It's identical to TouchCountEQ.
func TouchCount(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldTouchCount, v))
}

// TrajectoryCount applies equality check predicate on the "trajectory_count" field. It's identical to TrajectoryCountEQ.
func TrajectoryCount(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldTrajectoryCount, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldLastSeen, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContainsFold(FieldEntityID, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContainsFold(FieldAccountID, v))
}

// FirstTrajectoryIDEQ applies the EQ predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDNEQ applies the NEQ predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDNEQ(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDIn applies the In predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldFirstTrajectoryID, vs...))
}

// FirstTrajectoryIDNotIn applies the NotIn predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDNotIn(vs ...string) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldFirstTrajectoryID, vs...))
}

// FirstTrajectoryIDGT applies the GT predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDGT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDGTE applies the GTE predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDGTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDLT applies the LT predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDLT(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDLTE applies the LTE predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDLTE(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDContains applies the Contains predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDContains(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContains(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDHasPrefix applies the HasPrefix predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDHasPrefix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasPrefix(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDHasSuffix applies the HasSuffix predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDHasSuffix(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldHasSuffix(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDEqualFold applies the EqualFold predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDEqualFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldEqualFold(FieldFirstTrajectoryID, v))
}

// FirstTrajectoryIDContainsFold applies the ContainsFold predicate on the "first_trajectory_id" field.
func FirstTrajectoryIDContainsFold(v string) predicate.Contribution {
	return predicate.Contribution(sql.FieldContainsFold(FieldFirstTrajectoryID, v))
}

// TouchCountEQ applies the EQ predicate on the "touch_count" field.
func TouchCountEQ(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldTouchCount, v))
}

// TouchCountNEQ applies the NEQ predicate on the "touch_count" field.
func TouchCountNEQ(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldTouchCount, v))
}

// TouchCountIn applies the In predicate on the "touch_count" field.
func TouchCountIn(vs ...int) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldTouchCount, vs...))
}

// TouchCountNotIn applies the NotIn predicate on the "touch_count" field.
func TouchCountNotIn(vs ...int) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldTouchCount, vs...))
}

// TouchCountGT applies the GT predicate on the "touch_count" field.
func TouchCountGT(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldTouchCount, v))
}

// TouchCountGTE applies the GTE predicate on the "touch_count" field.
func TouchCountGTE(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldTouchCount, v))
}

// TouchCountLT applies the LT predicate on the "touch_count" field.
func TouchCountLT(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldTouchCount, v))
}

// TouchCountLTE applies the LTE predicate on the "touch_count" field.
func TouchCountLTE(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldTouchCount, v))
}

// TrajectoryCountEQ applies the EQ predicate on the "trajectory_count" field.
func TrajectoryCountEQ(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountNEQ applies the NEQ predicate on the "trajectory_count" field.
func TrajectoryCountNEQ(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountIn applies the In predicate on the "trajectory_count" field.
func TrajectoryCountIn(vs ...int) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountNotIn applies the NotIn predicate on the "trajectory_count" field.
func TrajectoryCountNotIn(vs ...int) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountGT applies the GT predicate on the "trajectory_count" field.
func TrajectoryCountGT(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldTrajectoryCount, v))
}

// TrajectoryCountGTE applies the GTE predicate on the "trajectory_count" field.
func TrajectoryCountGTE(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldTrajectoryCount, v))
}

// TrajectoryCountLT applies the LT predicate on the "trajectory_count" field.
func TrajectoryCountLT(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldTrajectoryCount, v))
}

// TrajectoryCountLTE applies the LTE predicate on the "trajectory_count" field.
func TrajectoryCountLTE(v int) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldTrajectoryCount, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v int64) predicate.Contribution {
	return predicate.Contribution(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contribution) predicate.Contribution {
	return predicate.Contribution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contribution) predicate.Contribution {
	return predicate.Contribution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contribution) predicate.Contribution {
	return predicate.Contribution(sql.NotPredicates(p))
}
