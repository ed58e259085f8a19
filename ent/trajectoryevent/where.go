// Code generated by ent, DO NOT EDIT.

package trajectoryevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldContainsFold(FieldID, id))
}

// TrajectoryID applies equality check predicate on the "trajectory_id" field. It's identical to TrajectoryIDEQ.
func TrajectoryID(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldTrajectoryID, v))
}

// SequenceNum applies equality check predicate on the "sequence_num" field. It's identical to SequenceNumEQ.
func SequenceNum(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldSequenceNum, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldEntityID, v))
}

// TrajectoryIDEQ applies the EQ predicate on the "trajectory_id" field.
func TrajectoryIDEQ(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldTrajectoryID, v))
}

// TrajectoryIDNEQ applies the NEQ predicate on the "trajectory_id" field.
func TrajectoryIDNEQ(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldTrajectoryID, v))
}

// TrajectoryIDIn applies the In predicate on the "trajectory_id" field.
func TrajectoryIDIn(vs ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldTrajectoryID, vs...))
}

// TrajectoryIDNotIn applies the NotIn predicate on the "trajectory_id" field.
func TrajectoryIDNotIn(vs ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldTrajectoryID, vs...))
}

// TrajectoryIDGT applies the GT predicate on the "trajectory_id" field.
func TrajectoryIDGT(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGT(FieldTrajectoryID, v))
}

// TrajectoryIDGTE applies the GTE predicate on the "trajectory_id" field.
func TrajectoryIDGTE(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGTE(FieldTrajectoryID, v))
}

// TrajectoryIDLT applies the LT predicate on the "trajectory_id" field.
func TrajectoryIDLT(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLT(FieldTrajectoryID, v))
}

// TrajectoryIDLTE applies the LTE predicate on the "trajectory_id" field.
func TrajectoryIDLTE(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLTE(FieldTrajectoryID, v))
}

// TrajectoryIDContains applies the Contains predicate on the "trajectory_id" field.
func TrajectoryIDContains(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldContains(FieldTrajectoryID, v))
}

// TrajectoryIDHasPrefix applies the HasPrefix predicate on the "trajectory_id" field.
func TrajectoryIDHasPrefix(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldHasPrefix(FieldTrajectoryID, v))
}

// TrajectoryIDHasSuffix applies the HasSuffix predicate on the "trajectory_id" field.
func TrajectoryIDHasSuffix(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldHasSuffix(FieldTrajectoryID, v))
}

// TrajectoryIDEqualFold applies the EqualFold predicate on the "trajectory_id" field.
func TrajectoryIDEqualFold(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEqualFold(FieldTrajectoryID, v))
}

// TrajectoryIDContainsFold applies the ContainsFold predicate on the "trajectory_id" field.
func TrajectoryIDContainsFold(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldContainsFold(FieldTrajectoryID, v))
}

// SequenceNumEQ applies the EQ predicate on the "sequence_num" field.
func SequenceNumEQ(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldSequenceNum, v))
}

// SequenceNumNEQ applies the NEQ predicate on the "sequence_num" field.
func SequenceNumNEQ(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldSequenceNum, v))
}

// SequenceNumIn applies the In predicate on the "sequence_num" field.
func SequenceNumIn(vs ...int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldSequenceNum, vs...))
}

// SequenceNumNotIn applies the NotIn predicate on the "sequence_num" field.
func SequenceNumNotIn(vs ...int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldSequenceNum, vs...))
}

// SequenceNumGT applies the GT predicate on the "sequence_num" field.
func SequenceNumGT(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGT(FieldSequenceNum, v))
}

// SequenceNumGTE applies the GTE predicate on the "sequence_num" field.
func SequenceNumGTE(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGTE(FieldSequenceNum, v))
}

// SequenceNumLT applies the LT predicate on the "sequence_num" field.
func SequenceNumLT(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLT(FieldSequenceNum, v))
}

// SequenceNumLTE applies the LTE predicate on the "sequence_num" field.
func SequenceNumLTE(v int) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLTE(FieldSequenceNum, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v int64) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldContainsFold(FieldEntityID, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.FieldNotNull(FieldData))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrajectoryEvent) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrajectoryEvent) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrajectoryEvent) predicate.TrajectoryEvent {
	return predicate.TrajectoryEvent(sql.NotPredicates(p))
}
