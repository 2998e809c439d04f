// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"expensedesk.io/approvalflow/ent/predicate"
	"expensedesk.io/approvalflow/ent/rulecondition"
)

// RuleConditionUpdate is the builder for updating RuleCondition entities.
type RuleConditionUpdate struct {
	config
	hooks    []Hook
	mutation *RuleConditionMutation
}

// Where appends a list predicates to the RuleConditionUpdate builder.
func (_u *RuleConditionUpdate) Where(ps ...predicate.RuleCondition) *RuleConditionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RuleConditionUpdate) SetKind(v rulecondition.Kind) *RuleConditionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RuleConditionUpdate) SetNillableKind(v *rulecondition.Kind) *RuleConditionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMinAmount sets the "min_amount" field.
func (_u *RuleConditionUpdate) SetMinAmount(v int64) *RuleConditionUpdate {
	_u.mutation.ResetMinAmount()
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *RuleConditionUpdate) SetNillableMinAmount(v *int64) *RuleConditionUpdate {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// AddMinAmount adds value to the "min_amount" field.
func (_u *RuleConditionUpdate) AddMinAmount(v int64) *RuleConditionUpdate {
	_u.mutation.AddMinAmount(v)
	return _u
}

// ClearMinAmount clears the value of the "min_amount" field.
func (_u *RuleConditionUpdate) ClearMinAmount() *RuleConditionUpdate {
	_u.mutation.ClearMinAmount()
	return _u
}

// SetMaxAmount sets the "max_amount" field.
func (_u *RuleConditionUpdate) SetMaxAmount(v int64) *RuleConditionUpdate {
	_u.mutation.ResetMaxAmount()
	_u.mutation.SetMaxAmount(v)
	return _u
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_u *RuleConditionUpdate) SetNillableMaxAmount(v *int64) *RuleConditionUpdate {
	if v != nil {
		_u.SetMaxAmount(*v)
	}
	return _u
}

// AddMaxAmount adds value to the "max_amount" field.
func (_u *RuleConditionUpdate) AddMaxAmount(v int64) *RuleConditionUpdate {
	_u.mutation.AddMaxAmount(v)
	return _u
}

// ClearMaxAmount clears the value of the "max_amount" field.
func (_u *RuleConditionUpdate) ClearMaxAmount() *RuleConditionUpdate {
	_u.mutation.ClearMaxAmount()
	return _u
}

// SetValues sets the "values" field.
func (_u *RuleConditionUpdate) SetValues(v []string) *RuleConditionUpdate {
	_u.mutation.SetValues(v)
	return _u
}

// AppendValues appends value to the "values" field.
func (_u *RuleConditionUpdate) AppendValues(v []string) *RuleConditionUpdate {
	_u.mutation.AppendValues(v)
	return _u
}

// ClearValues clears the value of the "values" field.
func (_u *RuleConditionUpdate) ClearValues() *RuleConditionUpdate {
	_u.mutation.ClearValues()
	return _u
}

// Mutation returns the RuleConditionMutation object of the builder.
func (_u *RuleConditionUpdate) Mutation() *RuleConditionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleConditionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleConditionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleConditionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleConditionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleConditionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := rulecondition.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RuleCondition.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleConditionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rulecondition.Table, rulecondition.Columns, sqlgraph.NewFieldSpec(rulecondition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(rulecondition.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(rulecondition.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinAmount(); ok {
		_spec.AddField(rulecondition.FieldMinAmount, field.TypeInt64, value)
	}
	if _u.mutation.MinAmountCleared() {
		_spec.ClearField(rulecondition.FieldMinAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.MaxAmount(); ok {
		_spec.SetField(rulecondition.FieldMaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxAmount(); ok {
		_spec.AddField(rulecondition.FieldMaxAmount, field.TypeInt64, value)
	}
	if _u.mutation.MaxAmountCleared() {
		_spec.ClearField(rulecondition.FieldMaxAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Values(); ok {
		_spec.SetField(rulecondition.FieldValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rulecondition.FieldValues, value)
		})
	}
	if _u.mutation.ValuesCleared() {
		_spec.ClearField(rulecondition.FieldValues, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rulecondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleConditionUpdateOne is the builder for updating a single RuleCondition entity.
type RuleConditionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleConditionMutation
}

// SetKind sets the "kind" field.
func (_u *RuleConditionUpdateOne) SetKind(v rulecondition.Kind) *RuleConditionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RuleConditionUpdateOne) SetNillableKind(v *rulecondition.Kind) *RuleConditionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMinAmount sets the "min_amount" field.
func (_u *RuleConditionUpdateOne) SetMinAmount(v int64) *RuleConditionUpdateOne {
	_u.mutation.ResetMinAmount()
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *RuleConditionUpdateOne) SetNillableMinAmount(v *int64) *RuleConditionUpdateOne {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// AddMinAmount adds value to the "min_amount" field.
func (_u *RuleConditionUpdateOne) AddMinAmount(v int64) *RuleConditionUpdateOne {
	_u.mutation.AddMinAmount(v)
	return _u
}

// ClearMinAmount clears the value of the "min_amount" field.
func (_u *RuleConditionUpdateOne) ClearMinAmount() *RuleConditionUpdateOne {
	_u.mutation.ClearMinAmount()
	return _u
}

// SetMaxAmount sets the "max_amount" field.
func (_u *RuleConditionUpdateOne) SetMaxAmount(v int64) *RuleConditionUpdateOne {
	_u.mutation.ResetMaxAmount()
	_u.mutation.SetMaxAmount(v)
	return _u
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_u *RuleConditionUpdateOne) SetNillableMaxAmount(v *int64) *RuleConditionUpdateOne {
	if v != nil {
		_u.SetMaxAmount(*v)
	}
	return _u
}

// AddMaxAmount adds value to the "max_amount" field.
func (_u *RuleConditionUpdateOne) AddMaxAmount(v int64) *RuleConditionUpdateOne {
	_u.mutation.AddMaxAmount(v)
	return _u
}

// ClearMaxAmount clears the value of the "max_amount" field.
func (_u *RuleConditionUpdateOne) ClearMaxAmount() *RuleConditionUpdateOne {
	_u.mutation.ClearMaxAmount()
	return _u
}

// SetValues sets the "values" field.
func (_u *RuleConditionUpdateOne) SetValues(v []string) *RuleConditionUpdateOne {
	_u.mutation.SetValues(v)
	return _u
}

// AppendValues appends value to the "values" field.
func (_u *RuleConditionUpdateOne) AppendValues(v []string) *RuleConditionUpdateOne {
	_u.mutation.AppendValues(v)
	return _u
}

// ClearValues clears the value of the "values" field.
func (_u *RuleConditionUpdateOne) ClearValues() *RuleConditionUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// Mutation returns the RuleConditionMutation object of the builder.
func (_u *RuleConditionUpdateOne) Mutation() *RuleConditionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuleConditionUpdate builder.
func (_u *RuleConditionUpdateOne) Where(ps ...predicate.RuleCondition) *RuleConditionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleConditionUpdateOne) Select(field string, fields ...string) *RuleConditionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuleCondition entity.
func (_u *RuleConditionUpdateOne) Save(ctx context.Context) (*RuleCondition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleConditionUpdateOne) SaveX(ctx context.Context) *RuleCondition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleConditionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleConditionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleConditionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := rulecondition.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RuleCondition.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleConditionUpdateOne) sqlSave(ctx context.Context) (_node *RuleCondition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rulecondition.Table, rulecondition.Columns, sqlgraph.NewFieldSpec(rulecondition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuleCondition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rulecondition.FieldID)
		for _, f := range fields {
			if !rulecondition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rulecondition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(rulecondition.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(rulecondition.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinAmount(); ok {
		_spec.AddField(rulecondition.FieldMinAmount, field.TypeInt64, value)
	}
	if _u.mutation.MinAmountCleared() {
		_spec.ClearField(rulecondition.FieldMinAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.MaxAmount(); ok {
		_spec.SetField(rulecondition.FieldMaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxAmount(); ok {
		_spec.AddField(rulecondition.FieldMaxAmount, field.TypeInt64, value)
	}
	if _u.mutation.MaxAmountCleared() {
		_spec.ClearField(rulecondition.FieldMaxAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Values(); ok {
		_spec.SetField(rulecondition.FieldValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rulecondition.FieldValues, value)
		})
	}
	if _u.mutation.ValuesCleared() {
		_spec.ClearField(rulecondition.FieldValues, field.TypeJSON)
	}
	_node = &RuleCondition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rulecondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
