// Code generated by ent, DO NOT EDIT.

package rulecondition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rulecondition type in the database.
	Label = "rule_condition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMinAmount holds the string denoting the min_amount field in the database.
	FieldMinAmount = "min_amount"
	// FieldMaxAmount holds the string denoting the max_amount field in the database.
	FieldMaxAmount = "max_amount"
	// FieldValues holds the string denoting the values field in the database.
	FieldValues = "values"
	// Table holds the table name of the rulecondition in the database.
	Table = "rule_conditions"
)

// Columns holds all SQL columns for rulecondition fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldRuleID,
	FieldKind,
	FieldMinAmount,
	FieldMaxAmount,
	FieldValues,
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
	// RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	RuleIDValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindAMOUNT_THRESHOLD Kind = "AMOUNT_THRESHOLD"
	KindCATEGORY         Kind = "CATEGORY"
	KindSUBMITTER_ROLE   Kind = "SUBMITTER_ROLE"
	KindDEPARTMENT       Kind = "DEPARTMENT"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindAMOUNT_THRESHOLD, KindCATEGORY, KindSUBMITTER_ROLE, KindDEPARTMENT:
		return nil
	default:
		return fmt.Errorf("rulecondition: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the RuleCondition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByMinAmount orders the results by the min_amount field.
func ByMinAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAmount, opts...).ToFunc()
}

// ByMaxAmount orders the results by the max_amount field.
func ByMaxAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAmount, opts...).ToFunc()
}
