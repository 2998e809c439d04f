// Code generated by ent, DO NOT EDIT.

package approval

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approval type in the database.
	Label = "approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpenseID holds the string denoting the expense_id field in the database.
	FieldExpenseID = "expense_id"
	// FieldApproverID holds the string denoting the approver_id field in the database.
	FieldApproverID = "approver_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldChainKey holds the string denoting the chain_key field in the database.
	FieldChainKey = "chain_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSequenceOrder holds the string denoting the sequence_order field in the database.
	FieldSequenceOrder = "sequence_order"
	// FieldIsSequential holds the string denoting the is_sequential field in the database.
	FieldIsSequential = "is_sequential"
	// FieldIsRequired holds the string denoting the is_required field in the database.
	FieldIsRequired = "is_required"
	// FieldRuleTotalApprovers holds the string denoting the rule_total_approvers field in the database.
	FieldRuleTotalApprovers = "rule_total_approvers"
	// FieldRuleMinPercentage holds the string denoting the rule_min_percentage field in the database.
	FieldRuleMinPercentage = "rule_min_percentage"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// Table holds the table name of the approval in the database.
	Table = "approvals"
)

// Columns holds all SQL columns for approval fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldExpenseID,
	FieldApproverID,
	FieldRuleID,
	FieldChainKey,
	FieldStatus,
	FieldSequenceOrder,
	FieldIsSequential,
	FieldIsRequired,
	FieldRuleTotalApprovers,
	FieldRuleMinPercentage,
	FieldComment,
	FieldProcessedAt,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ExpenseIDValidator is a validator for the "expense_id" field. It is called by the builders before save.
	ExpenseIDValidator func(string) error
	// ApproverIDValidator is a validator for the "approver_id" field. It is called by the builders before save.
	ApproverIDValidator func(string) error
	// ChainKeyValidator is a validator for the "chain_key" field. It is called by the builders before save.
	ChainKeyValidator func(string) error
	// DefaultIsSequential holds the default value on creation for the "is_sequential" field.
	DefaultIsSequential bool
	// DefaultIsRequired holds the default value on creation for the "is_required" field.
	DefaultIsRequired bool
	// RuleTotalApproversValidator is a validator for the "rule_total_approvers" field. It is called by the builders before save.
	RuleTotalApproversValidator func(int) error
	// RuleMinPercentageValidator is a validator for the "rule_min_percentage" field. It is called by the builders before save.
	RuleMinPercentageValidator func(int) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING  Status = "PENDING"
	StatusAPPROVED Status = "APPROVED"
	StatusREJECTED Status = "REJECTED"
	StatusSKIPPED  Status = "SKIPPED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusAPPROVED, StatusREJECTED, StatusSKIPPED:
		return nil
	default:
		return fmt.Errorf("approval: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Approval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpenseID orders the results by the expense_id field.
func ByExpenseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseID, opts...).ToFunc()
}

// ByApproverID orders the results by the approver_id field.
func ByApproverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproverID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByChainKey orders the results by the chain_key field.
func ByChainKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChainKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySequenceOrder orders the results by the sequence_order field.
func BySequenceOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceOrder, opts...).ToFunc()
}

// ByIsSequential orders the results by the is_sequential field.
func ByIsSequential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSequential, opts...).ToFunc()
}

// ByIsRequired orders the results by the is_required field.
func ByIsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRequired, opts...).ToFunc()
}

// ByRuleTotalApprovers orders the results by the rule_total_approvers field.
func ByRuleTotalApprovers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleTotalApprovers, opts...).ToFunc()
}

// ByRuleMinPercentage orders the results by the rule_min_percentage field.
func ByRuleMinPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleMinPercentage, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}
