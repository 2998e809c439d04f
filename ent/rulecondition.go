// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/rulecondition"
)

// RuleCondition is the model entity for the RuleCondition schema.
type RuleCondition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind rulecondition.Kind `json:"kind,omitempty"`
	// MinAmount holds the value of the "min_amount" field.
	MinAmount int64 `json:"min_amount,omitempty"`
	// MaxAmount holds the value of the "max_amount" field.
	MaxAmount int64 `json:"max_amount,omitempty"`
	// Values holds the value of the "values" field.
	Values       []string `json:"values,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuleCondition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rulecondition.FieldValues:
			values[i] = new([]byte)
		case rulecondition.FieldMinAmount, rulecondition.FieldMaxAmount:
			values[i] = new(sql.NullInt64)
		case rulecondition.FieldID, rulecondition.FieldRuleID, rulecondition.FieldKind:
			values[i] = new(sql.NullString)
		case rulecondition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuleCondition fields.
func (_m *RuleCondition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rulecondition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rulecondition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rulecondition.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case rulecondition.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = rulecondition.Kind(value.String)
			}
		case rulecondition.FieldMinAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_amount", values[i])
			} else if value.Valid {
				_m.MinAmount = value.Int64
			}
		case rulecondition.FieldMaxAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_amount", values[i])
			} else if value.Valid {
				_m.MaxAmount = value.Int64
			}
		case rulecondition.FieldValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Values); err != nil {
					return fmt.Errorf("unmarshal field values: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RuleCondition.
// This includes values selected through modifiers, order, etc.
func (_m *RuleCondition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RuleCondition.
// Note that you need to call RuleCondition.Unwrap() before calling this method if this RuleCondition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuleCondition) Update() *RuleConditionUpdateOne {
	return NewRuleConditionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuleCondition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuleCondition) Unwrap() *RuleCondition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuleCondition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuleCondition) String() string {
	var builder strings.Builder
	builder.WriteString("RuleCondition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("min_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinAmount))
	builder.WriteString(", ")
	builder.WriteString("max_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAmount))
	builder.WriteString(", ")
	builder.WriteString("values=")
	builder.WriteString(fmt.Sprintf("%v", _m.Values))
	builder.WriteByte(')')
	return builder.String()
}

// RuleConditions is a parsable slice of RuleCondition.
type RuleConditions []*RuleCondition
