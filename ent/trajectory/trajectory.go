// Code generated by ent, DO NOT EDIT.

package trajectory

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trajectory type in the database.
	Label = "trajectory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldInputText holds the string denoting the input_text field in the database.
	FieldInputText = "input_text"
	// FieldInputHash holds the string denoting the input_hash field in the database.
	FieldInputHash = "input_hash"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the trajectory in the database.
	Table = "trajectories"
)

// Columns holds all SQL columns for trajectory fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldConversationID,
	FieldInputText,
	FieldInputHash,
	FieldSummary,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the Trajectory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByInputText orders the results by the input_text field.
func ByInputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputText, opts...).ToFunc()
}

// ByInputHash orders the results by the input_hash field.
func ByInputHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputHash, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
