// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"expensedesk.io/approvalflow/ent/approval"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdate) SetUpdatedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *ApprovalUpdate) SetSequenceOrder(v int) *ApprovalUpdate {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableSequenceOrder(v *int) *ApprovalUpdate {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *ApprovalUpdate) AddSequenceOrder(v int) *ApprovalUpdate {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *ApprovalUpdate) ClearSequenceOrder() *ApprovalUpdate {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalUpdate) SetComment(v string) *ApprovalUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableComment(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalUpdate) ClearComment() *ApprovalUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApprovalUpdate) SetProcessedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableProcessedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApprovalUpdate) ClearProcessedAt() *ApprovalUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(approval.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(approval.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(approval.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(approval.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approval.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(approval.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(approval.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdateOne) SetUpdatedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *ApprovalUpdateOne) SetSequenceOrder(v int) *ApprovalUpdateOne {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableSequenceOrder(v *int) *ApprovalUpdateOne {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *ApprovalUpdateOne) AddSequenceOrder(v int) *ApprovalUpdateOne {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *ApprovalUpdateOne) ClearSequenceOrder() *ApprovalUpdateOne {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalUpdateOne) SetComment(v string) *ApprovalUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableComment(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalUpdateOne) ClearComment() *ApprovalUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApprovalUpdateOne) SetProcessedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableProcessedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApprovalUpdateOne) ClearProcessedAt() *ApprovalUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(approval.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(approval.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(approval.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(approval.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approval.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(approval.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(approval.FieldProcessedAt, field.TypeTime)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
