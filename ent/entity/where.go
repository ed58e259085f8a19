// Code generated by ent, DO NOT EDIT.

package entity

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldNormalizedName, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldEntityType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldDescription, v))
}

// TouchCount applies equality check predicate on the "touch_count" field. It's identical to TouchCountEQ.
func TouchCount(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldTouchCount, v))
}

// TrajectoryCount applies equality check predicate on the "trajectory_count" field. It's identical to TrajectoryCountEQ.
func TrajectoryCount(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldTrajectoryCount, v))
}

// ContributorCount applies equality check predicate on the "contributor_count" field. It's identical to ContributorCountEQ.
func ContributorCount(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldContributorCount, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldLastSeen, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldNormalizedName, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeIsNil applies the IsNil predicate on the "entity_type" field.
func EntityTypeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldEntityType))
}

// EntityTypeNotNil applies the NotNil predicate on the "entity_type" field.
func EntityTypeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldEntityType))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldEntityType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldDescription, v))
}

// TouchCountEQ applies the EQ predicate on the "touch_count" field.
func TouchCountEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldTouchCount, v))
}

// TouchCountNEQ applies the NEQ predicate on the "touch_count" field.
func TouchCountNEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldTouchCount, v))
}

// TouchCountIn applies the In predicate on the "touch_count" field.
func TouchCountIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldTouchCount, vs...))
}

// TouchCountNotIn applies the NotIn predicate on the "touch_count" field.
func TouchCountNotIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldTouchCount, vs...))
}

// TouchCountGT applies the GT predicate on the "touch_count" field.
func TouchCountGT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldTouchCount, v))
}

// TouchCountGTE applies the GTE predicate on the "touch_count" field.
func TouchCountGTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldTouchCount, v))
}

// TouchCountLT applies the LT predicate on the "touch_count" field.
func TouchCountLT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldTouchCount, v))
}

// TouchCountLTE applies the LTE predicate on the "touch_count" field.
func TouchCountLTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldTouchCount, v))
}

// TrajectoryCountEQ applies the EQ predicate on the "trajectory_count" field.
func TrajectoryCountEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountNEQ applies the NEQ predicate on the "trajectory_count" field.
func TrajectoryCountNEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldTrajectoryCount, v))
}

// TrajectoryCountIn applies the In predicate on the "trajectory_count" field.
func TrajectoryCountIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountNotIn applies the NotIn predicate on the "trajectory_count" field.
func TrajectoryCountNotIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldTrajectoryCount, vs...))
}

// TrajectoryCountGT applies the GT predicate on the "trajectory_count" field.
func TrajectoryCountGT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldTrajectoryCount, v))
}

// TrajectoryCountGTE applies the GTE predicate on the "trajectory_count" field.
func TrajectoryCountGTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldTrajectoryCount, v))
}

// TrajectoryCountLT applies the LT predicate on the "trajectory_count" field.
func TrajectoryCountLT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldTrajectoryCount, v))
}

// TrajectoryCountLTE applies the LTE predicate on the "trajectory_count" field.
func TrajectoryCountLTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldTrajectoryCount, v))
}

// ContributorCountEQ applies the EQ predicate on the "contributor_count" field.
func ContributorCountEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldContributorCount, v))
}

// ContributorCountNEQ applies the NEQ predicate on the "contributor_count" field.
func ContributorCountNEQ(v int) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldContributorCount, v))
}

// ContributorCountIn applies the In predicate on the "contributor_count" field.
func ContributorCountIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldContributorCount, vs...))
}

// ContributorCountNotIn applies the NotIn predicate on the "contributor_count" field.
func ContributorCountNotIn(vs ...int) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldContributorCount, vs...))
}

// ContributorCountGT applies the GT predicate on the "contributor_count" field.
func ContributorCountGT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldContributorCount, v))
}

// ContributorCountGTE applies the GTE predicate on the "contributor_count" field.
func ContributorCountGTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldContributorCount, v))
}

// ContributorCountLT applies the LT predicate on the "contributor_count" field.
func ContributorCountLT(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldContributorCount, v))
}

// ContributorCountLTE applies the LTE predicate on the "contributor_count" field.
func ContributorCountLTE(v int) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldContributorCount, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...int64) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...int64) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...int64) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...int64) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v int64) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.NotPredicates(p))
}
