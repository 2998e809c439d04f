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
	"expensedesk.io/approvalflow/ent/approvalrule"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ApprovalRuleUpdate is the builder for updating ApprovalRule entities.
type ApprovalRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRuleMutation
}

// Where appends a list predicates to the ApprovalRuleUpdate builder.
func (_u *ApprovalRuleUpdate) Where(ps ...predicate.ApprovalRule) *ApprovalRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRuleUpdate) SetUpdatedAt(v time.Time) *ApprovalRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ApprovalRuleUpdate) SetName(v string) *ApprovalRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableName(v *string) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRuleUpdate) SetDescription(v string) *ApprovalRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableDescription(v *string) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRuleUpdate) ClearDescription() *ApprovalRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ApprovalRuleUpdate) SetPriority(v int) *ApprovalRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillablePriority(v *int) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ApprovalRuleUpdate) AddPriority(v int) *ApprovalRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (_u *ApprovalRuleUpdate) SetIsManagerApprovalRequired(v bool) *ApprovalRuleUpdate {
	_u.mutation.SetIsManagerApprovalRequired(v)
	return _u
}

// SetNillableIsManagerApprovalRequired sets the "is_manager_approval_required" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableIsManagerApprovalRequired(v *bool) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetIsManagerApprovalRequired(*v)
	}
	return _u
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (_u *ApprovalRuleUpdate) SetIsSequenceRequired(v bool) *ApprovalRuleUpdate {
	_u.mutation.SetIsSequenceRequired(v)
	return _u
}

// SetNillableIsSequenceRequired sets the "is_sequence_required" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableIsSequenceRequired(v *bool) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetIsSequenceRequired(*v)
	}
	return _u
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (_u *ApprovalRuleUpdate) SetMinApprovalPercentage(v int) *ApprovalRuleUpdate {
	_u.mutation.ResetMinApprovalPercentage()
	_u.mutation.SetMinApprovalPercentage(v)
	return _u
}

// SetNillableMinApprovalPercentage sets the "min_approval_percentage" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableMinApprovalPercentage(v *int) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetMinApprovalPercentage(*v)
	}
	return _u
}

// AddMinApprovalPercentage adds value to the "min_approval_percentage" field.
func (_u *ApprovalRuleUpdate) AddMinApprovalPercentage(v int) *ApprovalRuleUpdate {
	_u.mutation.AddMinApprovalPercentage(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalRuleUpdate) SetActive(v bool) *ApprovalRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableActive(v *bool) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ApprovalRuleUpdate) SetCreatedBy(v string) *ApprovalRuleUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableCreatedBy(v *string) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_u *ApprovalRuleUpdate) Mutation() *ApprovalRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := approvalrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinApprovalPercentage(); ok {
		if err := approvalrule.MinApprovalPercentageValidator(v); err != nil {
			return &ValidationError{Name: "min_approval_percentage", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.min_approval_percentage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := approvalrule.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrule.Table, approvalrule.Columns, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(approvalrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(approvalrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(approvalrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsManagerApprovalRequired(); ok {
		_spec.SetField(approvalrule.FieldIsManagerApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSequenceRequired(); ok {
		_spec.SetField(approvalrule.FieldIsSequenceRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinApprovalPercentage(); ok {
		_spec.SetField(approvalrule.FieldMinApprovalPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinApprovalPercentage(); ok {
		_spec.AddField(approvalrule.FieldMinApprovalPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(approvalrule.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRuleUpdateOne is the builder for updating a single ApprovalRule entity.
type ApprovalRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRuleUpdateOne) SetUpdatedAt(v time.Time) *ApprovalRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ApprovalRuleUpdateOne) SetName(v string) *ApprovalRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableName(v *string) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRuleUpdateOne) SetDescription(v string) *ApprovalRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableDescription(v *string) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRuleUpdateOne) ClearDescription() *ApprovalRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ApprovalRuleUpdateOne) SetPriority(v int) *ApprovalRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillablePriority(v *int) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ApprovalRuleUpdateOne) AddPriority(v int) *ApprovalRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (_u *ApprovalRuleUpdateOne) SetIsManagerApprovalRequired(v bool) *ApprovalRuleUpdateOne {
	_u.mutation.SetIsManagerApprovalRequired(v)
	return _u
}

// SetNillableIsManagerApprovalRequired sets the "is_manager_approval_required" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableIsManagerApprovalRequired(v *bool) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetIsManagerApprovalRequired(*v)
	}
	return _u
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (_u *ApprovalRuleUpdateOne) SetIsSequenceRequired(v bool) *ApprovalRuleUpdateOne {
	_u.mutation.SetIsSequenceRequired(v)
	return _u
}

// SetNillableIsSequenceRequired sets the "is_sequence_required" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableIsSequenceRequired(v *bool) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetIsSequenceRequired(*v)
	}
	return _u
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (_u *ApprovalRuleUpdateOne) SetMinApprovalPercentage(v int) *ApprovalRuleUpdateOne {
	_u.mutation.ResetMinApprovalPercentage()
	_u.mutation.SetMinApprovalPercentage(v)
	return _u
}

// SetNillableMinApprovalPercentage sets the "min_approval_percentage" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableMinApprovalPercentage(v *int) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetMinApprovalPercentage(*v)
	}
	return _u
}

// AddMinApprovalPercentage adds value to the "min_approval_percentage" field.
func (_u *ApprovalRuleUpdateOne) AddMinApprovalPercentage(v int) *ApprovalRuleUpdateOne {
	_u.mutation.AddMinApprovalPercentage(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalRuleUpdateOne) SetActive(v bool) *ApprovalRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableActive(v *bool) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ApprovalRuleUpdateOne) SetCreatedBy(v string) *ApprovalRuleUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableCreatedBy(v *string) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_u *ApprovalRuleUpdateOne) Mutation() *ApprovalRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRuleUpdate builder.
func (_u *ApprovalRuleUpdateOne) Where(ps ...predicate.ApprovalRule) *ApprovalRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRuleUpdateOne) Select(field string, fields ...string) *ApprovalRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRule entity.
func (_u *ApprovalRuleUpdateOne) Save(ctx context.Context) (*ApprovalRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRuleUpdateOne) SaveX(ctx context.Context) *ApprovalRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := approvalrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinApprovalPercentage(); ok {
		if err := approvalrule.MinApprovalPercentageValidator(v); err != nil {
			return &ValidationError{Name: "min_approval_percentage", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.min_approval_percentage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := approvalrule.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRuleUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrule.Table, approvalrule.Columns, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrule.FieldID)
		for _, f := range fields {
			if !approvalrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrule.FieldID {
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
		_spec.SetField(approvalrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(approvalrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(approvalrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(approvalrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsManagerApprovalRequired(); ok {
		_spec.SetField(approvalrule.FieldIsManagerApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSequenceRequired(); ok {
		_spec.SetField(approvalrule.FieldIsSequenceRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinApprovalPercentage(); ok {
		_spec.SetField(approvalrule.FieldMinApprovalPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinApprovalPercentage(); ok {
		_spec.AddField(approvalrule.FieldMinApprovalPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(approvalrule.FieldCreatedBy, field.TypeString, value)
	}
	_node = &ApprovalRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
