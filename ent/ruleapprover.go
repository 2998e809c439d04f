// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/ruleapprover"
)

// RuleApprover is the model entity for the RuleApprover schema.
type RuleApprover struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// ApproverID holds the value of the "approver_id" field.
	ApproverID string `json:"approver_id,omitempty"`
	// SequenceOrder holds the value of the "sequence_order" field.
	SequenceOrder *int `json:"sequence_order,omitempty"`
	// IsRequired holds the value of the "is_required" field.
	IsRequired   bool `json:"is_required,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuleApprover) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ruleapprover.FieldIsRequired:
			values[i] = new(sql.NullBool)
		case ruleapprover.FieldSequenceOrder:
			values[i] = new(sql.NullInt64)
		case ruleapprover.FieldID, ruleapprover.FieldRuleID, ruleapprover.FieldApproverID:
			values[i] = new(sql.NullString)
		case ruleapprover.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuleApprover fields.
func (_m *RuleApprover) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ruleapprover.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ruleapprover.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ruleapprover.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case ruleapprover.FieldApproverID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver_id", values[i])
			} else if value.Valid {
				_m.ApproverID = value.String
			}
		case ruleapprover.FieldSequenceOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_order", values[i])
			} else if value.Valid {
				_m.SequenceOrder = new(int)
				*_m.SequenceOrder = int(value.Int64)
			}
		case ruleapprover.FieldIsRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_required", values[i])
			} else if value.Valid {
				_m.IsRequired = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RuleApprover.
// This includes values selected through modifiers, order, etc.
func (_m *RuleApprover) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RuleApprover.
// Note that you need to call RuleApprover.Unwrap() before calling this method if this RuleApprover
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuleApprover) Update() *RuleApproverUpdateOne {
	return NewRuleApproverClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuleApprover entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuleApprover) Unwrap() *RuleApprover {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuleApprover is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuleApprover) String() string {
	var builder strings.Builder
	builder.WriteString("RuleApprover(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("approver_id=")
	builder.WriteString(_m.ApproverID)
	builder.WriteString(", ")
	if v := _m.SequenceOrder; v != nil {
		builder.WriteString("sequence_order=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRequired))
	builder.WriteByte(')')
	return builder.String()
}

// RuleApprovers is a parsable slice of RuleApprover.
type RuleApprovers []*RuleApprover
