// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"expensedesk.io/approvalflow/ent/predicate"
	"expensedesk.io/approvalflow/ent/ruleapprover"
)

// RuleApproverUpdate is the builder for updating RuleApprover entities.
type RuleApproverUpdate struct {
	config
	hooks    []Hook
	mutation *RuleApproverMutation
}

// Where appends a list predicates to the RuleApproverUpdate builder.
func (_u *RuleApproverUpdate) Where(ps ...predicate.RuleApprover) *RuleApproverUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApproverID sets the "approver_id" field.
func (_u *RuleApproverUpdate) SetApproverID(v string) *RuleApproverUpdate {
	_u.mutation.SetApproverID(v)
	return _u
}

// SetNillableApproverID sets the "approver_id" field if the given value is not nil.
func (_u *RuleApproverUpdate) SetNillableApproverID(v *string) *RuleApproverUpdate {
	if v != nil {
		_u.SetApproverID(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *RuleApproverUpdate) SetSequenceOrder(v int) *RuleApproverUpdate {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *RuleApproverUpdate) SetNillableSequenceOrder(v *int) *RuleApproverUpdate {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *RuleApproverUpdate) AddSequenceOrder(v int) *RuleApproverUpdate {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *RuleApproverUpdate) ClearSequenceOrder() *RuleApproverUpdate {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *RuleApproverUpdate) SetIsRequired(v bool) *RuleApproverUpdate {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *RuleApproverUpdate) SetNillableIsRequired(v *bool) *RuleApproverUpdate {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// Mutation returns the RuleApproverMutation object of the builder.
func (_u *RuleApproverUpdate) Mutation() *RuleApproverMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleApproverUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleApproverUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleApproverUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleApproverUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleApproverUpdate) check() error {
	if v, ok := _u.mutation.ApproverID(); ok {
		if err := ruleapprover.ApproverIDValidator(v); err != nil {
			return &ValidationError{Name: "approver_id", err: fmt.Errorf(`ent: validator failed for field "RuleApprover.approver_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleApproverUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruleapprover.Table, ruleapprover.Columns, sqlgraph.NewFieldSpec(ruleapprover.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ApproverID(); ok {
		_spec.SetField(ruleapprover.FieldApproverID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(ruleapprover.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(ruleapprover.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(ruleapprover.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(ruleapprover.FieldIsRequired, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleapprover.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleApproverUpdateOne is the builder for updating a single RuleApprover entity.
type RuleApproverUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleApproverMutation
}

// SetApproverID sets the "approver_id" field.
func (_u *RuleApproverUpdateOne) SetApproverID(v string) *RuleApproverUpdateOne {
	_u.mutation.SetApproverID(v)
	return _u
}

// SetNillableApproverID sets the "approver_id" field if the given value is not nil.
func (_u *RuleApproverUpdateOne) SetNillableApproverID(v *string) *RuleApproverUpdateOne {
	if v != nil {
		_u.SetApproverID(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *RuleApproverUpdateOne) SetSequenceOrder(v int) *RuleApproverUpdateOne {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *RuleApproverUpdateOne) SetNillableSequenceOrder(v *int) *RuleApproverUpdateOne {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *RuleApproverUpdateOne) AddSequenceOrder(v int) *RuleApproverUpdateOne {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *RuleApproverUpdateOne) ClearSequenceOrder() *RuleApproverUpdateOne {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *RuleApproverUpdateOne) SetIsRequired(v bool) *RuleApproverUpdateOne {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *RuleApproverUpdateOne) SetNillableIsRequired(v *bool) *RuleApproverUpdateOne {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// Mutation returns the RuleApproverMutation object of the builder.
func (_u *RuleApproverUpdateOne) Mutation() *RuleApproverMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuleApproverUpdate builder.
func (_u *RuleApproverUpdateOne) Where(ps ...predicate.RuleApprover) *RuleApproverUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleApproverUpdateOne) Select(field string, fields ...string) *RuleApproverUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuleApprover entity.
func (_u *RuleApproverUpdateOne) Save(ctx context.Context) (*RuleApprover, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleApproverUpdateOne) SaveX(ctx context.Context) *RuleApprover {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleApproverUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleApproverUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleApproverUpdateOne) check() error {
	if v, ok := _u.mutation.ApproverID(); ok {
		if err := ruleapprover.ApproverIDValidator(v); err != nil {
			return &ValidationError{Name: "approver_id", err: fmt.Errorf(`ent: validator failed for field "RuleApprover.approver_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RuleApproverUpdateOne) sqlSave(ctx context.Context) (_node *RuleApprover, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruleapprover.Table, ruleapprover.Columns, sqlgraph.NewFieldSpec(ruleapprover.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuleApprover.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ruleapprover.FieldID)
		for _, f := range fields {
			if !ruleapprover.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ruleapprover.FieldID {
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
	if value, ok := _u.mutation.ApproverID(); ok {
		_spec.SetField(ruleapprover.FieldApproverID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(ruleapprover.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(ruleapprover.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(ruleapprover.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(ruleapprover.FieldIsRequired, field.TypeBool, value)
	}
	_node = &RuleApprover{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleapprover.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
