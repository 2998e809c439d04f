// Code generated by ent, DO NOT EDIT.

package approvalrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalrule type in the database.
	Label = "approval_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldIsManagerApprovalRequired holds the string denoting the is_manager_approval_required field in the database.
	FieldIsManagerApprovalRequired = "is_manager_approval_required"
	// FieldIsSequenceRequired holds the string denoting the is_sequence_required field in the database.
	FieldIsSequenceRequired = "is_sequence_required"
	// FieldMinApprovalPercentage holds the string denoting the min_approval_percentage field in the database.
	FieldMinApprovalPercentage = "min_approval_percentage"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the approvalrule in the database.
	Table = "approval_rules"
)

// Columns holds all SQL columns for approvalrule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompanyID,
	FieldName,
	FieldDescription,
	FieldPriority,
	FieldIsManagerApprovalRequired,
	FieldIsSequenceRequired,
	FieldMinApprovalPercentage,
	FieldActive,
	FieldCreatedBy,
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
	// CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	CompanyIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultIsManagerApprovalRequired holds the default value on creation for the "is_manager_approval_required" field.
	DefaultIsManagerApprovalRequired bool
	// DefaultIsSequenceRequired holds the default value on creation for the "is_sequence_required" field.
	DefaultIsSequenceRequired bool
	// DefaultMinApprovalPercentage holds the default value on creation for the "min_approval_percentage" field.
	DefaultMinApprovalPercentage int
	// MinApprovalPercentageValidator is a validator for the "min_approval_percentage" field. It is called by the builders before save.
	MinApprovalPercentageValidator func(int) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// OrderOption defines the ordering options for the ApprovalRule queries.
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

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByIsManagerApprovalRequired orders the results by the is_manager_approval_required field.
func ByIsManagerApprovalRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsManagerApprovalRequired, opts...).ToFunc()
}

// ByIsSequenceRequired orders the results by the is_sequence_required field.
func ByIsSequenceRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSequenceRequired, opts...).ToFunc()
}

// ByMinApprovalPercentage orders the results by the min_approval_percentage field.
func ByMinApprovalPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinApprovalPercentage, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
