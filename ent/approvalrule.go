// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/approvalrule"
)

// ApprovalRule is the model entity for the ApprovalRule schema.
type ApprovalRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// IsManagerApprovalRequired holds the value of the "is_manager_approval_required" field.
	IsManagerApprovalRequired bool `json:"is_manager_approval_required,omitempty"`
	// IsSequenceRequired holds the value of the "is_sequence_required" field.
	IsSequenceRequired bool `json:"is_sequence_required,omitempty"`
	// MinApprovalPercentage holds the value of the "min_approval_percentage" field.
	MinApprovalPercentage int `json:"min_approval_percentage,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrule.FieldIsManagerApprovalRequired, approvalrule.FieldIsSequenceRequired, approvalrule.FieldActive:
			values[i] = new(sql.NullBool)
		case approvalrule.FieldPriority, approvalrule.FieldMinApprovalPercentage:
			values[i] = new(sql.NullInt64)
		case approvalrule.FieldID, approvalrule.FieldCompanyID, approvalrule.FieldName, approvalrule.FieldDescription, approvalrule.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case approvalrule.FieldCreatedAt, approvalrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRule fields.
func (_m *ApprovalRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case approvalrule.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case approvalrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case approvalrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case approvalrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case approvalrule.FieldIsManagerApprovalRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_manager_approval_required", values[i])
			} else if value.Valid {
				_m.IsManagerApprovalRequired = value.Bool
			}
		case approvalrule.FieldIsSequenceRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_sequence_required", values[i])
			} else if value.Valid {
				_m.IsSequenceRequired = value.Bool
			}
		case approvalrule.FieldMinApprovalPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_approval_percentage", values[i])
			} else if value.Valid {
				_m.MinApprovalPercentage = int(value.Int64)
			}
		case approvalrule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case approvalrule.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRule.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalRule.
// Note that you need to call ApprovalRule.Unwrap() before calling this method if this ApprovalRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRule) Update() *ApprovalRuleUpdateOne {
	return NewApprovalRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRule) Unwrap() *ApprovalRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRule) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("is_manager_approval_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsManagerApprovalRequired))
	builder.WriteString(", ")
	builder.WriteString("is_sequence_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSequenceRequired))
	builder.WriteString(", ")
	builder.WriteString("min_approval_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinApprovalPercentage))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRules is a parsable slice of ApprovalRule.
type ApprovalRules []*ApprovalRule
