// Code generated by ent, DO NOT EDIT.

package trajectory

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldAccountID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldConversationID, v))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInputText, v))
}

// InputHash applies equality check predicate on the "input_hash" field. It's identical to InputHashEQ.
func InputHash(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInputHash, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldSummary, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCompletedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldAccountID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldConversationID, v))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldInputText, v))
}

// InputTextContains applies the Contains predicate on the "input_text" field.
func InputTextContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldInputText, v))
}

// InputTextHasPrefix applies the HasPrefix predicate on the "input_text" field.
func InputTextHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldInputText, v))
}

// InputTextHasSuffix applies the HasSuffix predicate on the "input_text" field.
func InputTextHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldInputText, v))
}

// InputTextEqualFold applies the EqualFold predicate on the "input_text" field.
func InputTextEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldInputText, v))
}

// InputTextContainsFold applies the ContainsFold predicate on the "input_text" field.
func InputTextContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldInputText, v))
}

// InputHashEQ applies the EQ predicate on the "input_hash" field.
func InputHashEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldInputHash, v))
}

// InputHashNEQ applies the NEQ predicate on the "input_hash" field.
func InputHashNEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldInputHash, v))
}

// InputHashIn applies the In predicate on the "input_hash" field.
func InputHashIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldInputHash, vs...))
}

// InputHashNotIn applies the NotIn predicate on the "input_hash" field.
func InputHashNotIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldInputHash, vs...))
}

// InputHashGT applies the GT predicate on the "input_hash" field.
func InputHashGT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldInputHash, v))
}

// InputHashGTE applies the GTE predicate on the "input_hash" field.
func InputHashGTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldInputHash, v))
}

// InputHashLT applies the LT predicate on the "input_hash" field.
func InputHashLT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldInputHash, v))
}

// InputHashLTE applies the LTE predicate on the "input_hash" field.
func InputHashLTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldInputHash, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldContainsFold(FieldSummary, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v int64) predicate.Trajectory {
	return predicate.Trajectory(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Trajectory {
	return predicate.Trajectory(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trajectory) predicate.Trajectory {
	return predicate.Trajectory(sql.NotPredicates(p))
}
