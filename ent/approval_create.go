// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"expensedesk.io/approvalflow/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalCreate) SetCreatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableCreatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalCreate) SetUpdatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpenseID sets the "expense_id" field.
func (_c *ApprovalCreate) SetExpenseID(v string) *ApprovalCreate {
	_c.mutation.SetExpenseID(v)
	return _c
}

// SetApproverID sets the "approver_id" field.
func (_c *ApprovalCreate) SetApproverID(v string) *ApprovalCreate {
	_c.mutation.SetApproverID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ApprovalCreate) SetRuleID(v string) *ApprovalCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableRuleID(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetChainKey sets the "chain_key" field.
func (_c *ApprovalCreate) SetChainKey(v string) *ApprovalCreate {
	_c.mutation.SetChainKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSequenceOrder sets the "sequence_order" field.
func (_c *ApprovalCreate) SetSequenceOrder(v int) *ApprovalCreate {
	_c.mutation.SetSequenceOrder(v)
	return _c
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableSequenceOrder(v *int) *ApprovalCreate {
	if v != nil {
		_c.SetSequenceOrder(*v)
	}
	return _c
}

// SetIsSequential sets the "is_sequential" field.
func (_c *ApprovalCreate) SetIsSequential(v bool) *ApprovalCreate {
	_c.mutation.SetIsSequential(v)
	return _c
}

// SetNillableIsSequential sets the "is_sequential" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableIsSequential(v *bool) *ApprovalCreate {
	if v != nil {
		_c.SetIsSequential(*v)
	}
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *ApprovalCreate) SetIsRequired(v bool) *ApprovalCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableIsRequired(v *bool) *ApprovalCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetRuleTotalApprovers sets the "rule_total_approvers" field.
func (_c *ApprovalCreate) SetRuleTotalApprovers(v int) *ApprovalCreate {
	_c.mutation.SetRuleTotalApprovers(v)
	return _c
}

// SetRuleMinPercentage sets the "rule_min_percentage" field.
func (_c *ApprovalCreate) SetRuleMinPercentage(v int) *ApprovalCreate {
	_c.mutation.SetRuleMinPercentage(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *ApprovalCreate) SetComment(v string) *ApprovalCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableComment(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ApprovalCreate) SetProcessedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableProcessedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approval.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsSequential(); !ok {
		v := approval.DefaultIsSequential
		_c.mutation.SetIsSequential(v)
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := approval.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Approval.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Approval.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpenseID(); !ok {
		return &ValidationError{Name: "expense_id", err: errors.New(`ent: missing required field "Approval.expense_id"`)}
	}
	if v, ok := _c.mutation.ExpenseID(); ok {
		if err := approval.ExpenseIDValidator(v); err != nil {
			return &ValidationError{Name: "expense_id", err: fmt.Errorf(`ent: validator failed for field "Approval.expense_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApproverID(); !ok {
		return &ValidationError{Name: "approver_id", err: errors.New(`ent: missing required field "Approval.approver_id"`)}
	}
	if v, ok := _c.mutation.ApproverID(); ok {
		if err := approval.ApproverIDValidator(v); err != nil {
			return &ValidationError{Name: "approver_id", err: fmt.Errorf(`ent: validator failed for field "Approval.approver_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChainKey(); !ok {
		return &ValidationError{Name: "chain_key", err: errors.New(`ent: missing required field "Approval.chain_key"`)}
	}
	if v, ok := _c.mutation.ChainKey(); ok {
		if err := approval.ChainKeyValidator(v); err != nil {
			return &ValidationError{Name: "chain_key", err: fmt.Errorf(`ent: validator failed for field "Approval.chain_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSequential(); !ok {
		return &ValidationError{Name: "is_sequential", err: errors.New(`ent: missing required field "Approval.is_sequential"`)}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`ent: missing required field "Approval.is_required"`)}
	}
	if _, ok := _c.mutation.RuleTotalApprovers(); !ok {
		return &ValidationError{Name: "rule_total_approvers", err: errors.New(`ent: missing required field "Approval.rule_total_approvers"`)}
	}
	if v, ok := _c.mutation.RuleTotalApprovers(); ok {
		if err := approval.RuleTotalApproversValidator(v); err != nil {
			return &ValidationError{Name: "rule_total_approvers", err: fmt.Errorf(`ent: validator failed for field "Approval.rule_total_approvers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleMinPercentage(); !ok {
		return &ValidationError{Name: "rule_min_percentage", err: errors.New(`ent: missing required field "Approval.rule_min_percentage"`)}
	}
	if v, ok := _c.mutation.RuleMinPercentage(); ok {
		if err := approval.RuleMinPercentageValidator(v); err != nil {
			return &ValidationError{Name: "rule_min_percentage", err: fmt.Errorf(`ent: validator failed for field "Approval.rule_min_percentage": %w`, err)}
		}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpenseID(); ok {
		_spec.SetField(approval.FieldExpenseID, field.TypeString, value)
		_node.ExpenseID = value
	}
	if value, ok := _c.mutation.ApproverID(); ok {
		_spec.SetField(approval.FieldApproverID, field.TypeString, value)
		_node.ApproverID = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(approval.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.ChainKey(); ok {
		_spec.SetField(approval.FieldChainKey, field.TypeString, value)
		_node.ChainKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SequenceOrder(); ok {
		_spec.SetField(approval.FieldSequenceOrder, field.TypeInt, value)
		_node.SequenceOrder = &value
	}
	if value, ok := _c.mutation.IsSequential(); ok {
		_spec.SetField(approval.FieldIsSequential, field.TypeBool, value)
		_node.IsSequential = value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(approval.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	if value, ok := _c.mutation.RuleTotalApprovers(); ok {
		_spec.SetField(approval.FieldRuleTotalApprovers, field.TypeInt, value)
		_node.RuleTotalApprovers = value
	}
	if value, ok := _c.mutation.RuleMinPercentage(); ok {
		_spec.SetField(approval.FieldRuleMinPercentage, field.TypeInt, value)
		_node.RuleMinPercentage = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(approval.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertOne {
	_c.conflict = opts
	return &ApprovalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflictColumns(columns ...string) *ApprovalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalUpsertOne is the builder for "upsert"-ing
	//  one Approval node.
	ApprovalUpsertOne struct {
		create *ApprovalCreate
	}

	// ApprovalUpsert is the "OnConflict" setter.
	ApprovalUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsert) SetUpdatedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateUpdatedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsert) SetStatus(v approval.Status) *ApprovalUpsert {
	u.Set(approval.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateStatus() *ApprovalUpsert {
	u.SetExcluded(approval.FieldStatus)
	return u
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *ApprovalUpsert) SetSequenceOrder(v int) *ApprovalUpsert {
	u.Set(approval.FieldSequenceOrder, v)
	return u
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateSequenceOrder() *ApprovalUpsert {
	u.SetExcluded(approval.FieldSequenceOrder)
	return u
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *ApprovalUpsert) AddSequenceOrder(v int) *ApprovalUpsert {
	u.Add(approval.FieldSequenceOrder, v)
	return u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *ApprovalUpsert) ClearSequenceOrder() *ApprovalUpsert {
	u.SetNull(approval.FieldSequenceOrder)
	return u
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsert) SetComment(v string) *ApprovalUpsert {
	u.Set(approval.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateComment() *ApprovalUpsert {
	u.SetExcluded(approval.FieldComment)
	return u
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsert) ClearComment() *ApprovalUpsert {
	u.SetNull(approval.FieldComment)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ApprovalUpsert) SetProcessedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateProcessedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ApprovalUpsert) ClearProcessedAt() *ApprovalUpsert {
	u.SetNull(approval.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertOne) UpdateNewValues() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approval.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approval.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ExpenseID(); exists {
			s.SetIgnore(approval.FieldExpenseID)
		}
		if _, exists := u.create.mutation.ApproverID(); exists {
			s.SetIgnore(approval.FieldApproverID)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(approval.FieldRuleID)
		}
		if _, exists := u.create.mutation.ChainKey(); exists {
			s.SetIgnore(approval.FieldChainKey)
		}
		if _, exists := u.create.mutation.IsSequential(); exists {
			s.SetIgnore(approval.FieldIsSequential)
		}
		if _, exists := u.create.mutation.IsRequired(); exists {
			s.SetIgnore(approval.FieldIsRequired)
		}
		if _, exists := u.create.mutation.RuleTotalApprovers(); exists {
			s.SetIgnore(approval.FieldRuleTotalApprovers)
		}
		if _, exists := u.create.mutation.RuleMinPercentage(); exists {
			s.SetIgnore(approval.FieldRuleMinPercentage)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalUpsertOne) Ignore() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertOne) DoNothing() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreate.OnConflict
// documentation for more info.
func (u *ApprovalUpsertOne) Update(set func(*ApprovalUpsert)) *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsertOne) SetUpdatedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateUpdatedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertOne) SetStatus(v approval.Status) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateStatus() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *ApprovalUpsertOne) SetSequenceOrder(v int) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *ApprovalUpsertOne) AddSequenceOrder(v int) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateSequenceOrder() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *ApprovalUpsertOne) ClearSequenceOrder() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsertOne) SetComment(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateComment() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsertOne) ClearComment() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearComment()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ApprovalUpsertOne) SetProcessedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateProcessedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ApprovalUpsertOne) ClearProcessedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalUpsertOne.ID is not supported by MySQL driver. Use ApprovalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
	conflict []sql.ConflictOption
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertBulk {
	_c.conflict = opts
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflictColumns(columns ...string) *ApprovalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// ApprovalUpsertBulk is the builder for "upsert"-ing
// a bulk of Approval nodes.
type ApprovalUpsertBulk struct {
	create *ApprovalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) UpdateNewValues() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approval.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approval.FieldCreatedAt)
			}
			if _, exists := b.mutation.ExpenseID(); exists {
				s.SetIgnore(approval.FieldExpenseID)
			}
			if _, exists := b.mutation.ApproverID(); exists {
				s.SetIgnore(approval.FieldApproverID)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(approval.FieldRuleID)
			}
			if _, exists := b.mutation.ChainKey(); exists {
				s.SetIgnore(approval.FieldChainKey)
			}
			if _, exists := b.mutation.IsSequential(); exists {
				s.SetIgnore(approval.FieldIsSequential)
			}
			if _, exists := b.mutation.IsRequired(); exists {
				s.SetIgnore(approval.FieldIsRequired)
			}
			if _, exists := b.mutation.RuleTotalApprovers(); exists {
				s.SetIgnore(approval.FieldRuleTotalApprovers)
			}
			if _, exists := b.mutation.RuleMinPercentage(); exists {
				s.SetIgnore(approval.FieldRuleMinPercentage)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) Ignore() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertBulk) DoNothing() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalUpsertBulk) Update(set func(*ApprovalUpsert)) *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalUpsertBulk) SetUpdatedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateUpdatedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertBulk) SetStatus(v approval.Status) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateStatus() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *ApprovalUpsertBulk) SetSequenceOrder(v int) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *ApprovalUpsertBulk) AddSequenceOrder(v int) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateSequenceOrder() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *ApprovalUpsertBulk) ClearSequenceOrder() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsertBulk) SetComment(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateComment() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsertBulk) ClearComment() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearComment()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ApprovalUpsertBulk) SetProcessedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateProcessedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ApprovalUpsertBulk) ClearProcessedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
