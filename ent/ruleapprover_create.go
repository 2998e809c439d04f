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
	"expensedesk.io/approvalflow/ent/ruleapprover"
)

// RuleApproverCreate is the builder for creating a RuleApprover entity.
type RuleApproverCreate struct {
	config
	mutation *RuleApproverMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleApproverCreate) SetCreatedAt(v time.Time) *RuleApproverCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleApproverCreate) SetNillableCreatedAt(v *time.Time) *RuleApproverCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *RuleApproverCreate) SetRuleID(v string) *RuleApproverCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetApproverID sets the "approver_id" field.
func (_c *RuleApproverCreate) SetApproverID(v string) *RuleApproverCreate {
	_c.mutation.SetApproverID(v)
	return _c
}

// SetSequenceOrder sets the "sequence_order" field.
func (_c *RuleApproverCreate) SetSequenceOrder(v int) *RuleApproverCreate {
	_c.mutation.SetSequenceOrder(v)
	return _c
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_c *RuleApproverCreate) SetNillableSequenceOrder(v *int) *RuleApproverCreate {
	if v != nil {
		_c.SetSequenceOrder(*v)
	}
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *RuleApproverCreate) SetIsRequired(v bool) *RuleApproverCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *RuleApproverCreate) SetNillableIsRequired(v *bool) *RuleApproverCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleApproverCreate) SetID(v string) *RuleApproverCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RuleApproverMutation object of the builder.
func (_c *RuleApproverCreate) Mutation() *RuleApproverMutation {
	return _c.mutation
}

// Save creates the RuleApprover in the database.
func (_c *RuleApproverCreate) Save(ctx context.Context) (*RuleApprover, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleApproverCreate) SaveX(ctx context.Context) *RuleApprover {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleApproverCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleApproverCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleApproverCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ruleapprover.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := ruleapprover.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleApproverCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RuleApprover.created_at"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "RuleApprover.rule_id"`)}
	}
	if v, ok := _c.mutation.RuleID(); ok {
		if err := ruleapprover.RuleIDValidator(v); err != nil {
			return &ValidationError{Name: "rule_id", err: fmt.Errorf(`ent: validator failed for field "RuleApprover.rule_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApproverID(); !ok {
		return &ValidationError{Name: "approver_id", err: errors.New(`ent: missing required field "RuleApprover.approver_id"`)}
	}
	if v, ok := _c.mutation.ApproverID(); ok {
		if err := ruleapprover.ApproverIDValidator(v); err != nil {
			return &ValidationError{Name: "approver_id", err: fmt.Errorf(`ent: validator failed for field "RuleApprover.approver_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`ent: missing required field "RuleApprover.is_required"`)}
	}
	return nil
}

func (_c *RuleApproverCreate) sqlSave(ctx context.Context) (*RuleApprover, error) {
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
			return nil, fmt.Errorf("unexpected RuleApprover.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleApproverCreate) createSpec() (*RuleApprover, *sqlgraph.CreateSpec) {
	var (
		_node = &RuleApprover{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ruleapprover.Table, sqlgraph.NewFieldSpec(ruleapprover.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ruleapprover.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(ruleapprover.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.ApproverID(); ok {
		_spec.SetField(ruleapprover.FieldApproverID, field.TypeString, value)
		_node.ApproverID = value
	}
	if value, ok := _c.mutation.SequenceOrder(); ok {
		_spec.SetField(ruleapprover.FieldSequenceOrder, field.TypeInt, value)
		_node.SequenceOrder = &value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(ruleapprover.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleApprover.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleApproverUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleApproverCreate) OnConflict(opts ...sql.ConflictOption) *RuleApproverUpsertOne {
	_c.conflict = opts
	return &RuleApproverUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleApproverCreate) OnConflictColumns(columns ...string) *RuleApproverUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleApproverUpsertOne{
		create: _c,
	}
}

type (
	// RuleApproverUpsertOne is the builder for "upsert"-ing
	//  one RuleApprover node.
	RuleApproverUpsertOne struct {
		create *RuleApproverCreate
	}

	// RuleApproverUpsert is the "OnConflict" setter.
	RuleApproverUpsert struct {
		*sql.UpdateSet
	}
)

// SetApproverID sets the "approver_id" field.
func (u *RuleApproverUpsert) SetApproverID(v string) *RuleApproverUpsert {
	u.Set(ruleapprover.FieldApproverID, v)
	return u
}

// UpdateApproverID sets the "approver_id" field to the value that was provided on create.
func (u *RuleApproverUpsert) UpdateApproverID() *RuleApproverUpsert {
	u.SetExcluded(ruleapprover.FieldApproverID)
	return u
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *RuleApproverUpsert) SetSequenceOrder(v int) *RuleApproverUpsert {
	u.Set(ruleapprover.FieldSequenceOrder, v)
	return u
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *RuleApproverUpsert) UpdateSequenceOrder() *RuleApproverUpsert {
	u.SetExcluded(ruleapprover.FieldSequenceOrder)
	return u
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *RuleApproverUpsert) AddSequenceOrder(v int) *RuleApproverUpsert {
	u.Add(ruleapprover.FieldSequenceOrder, v)
	return u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *RuleApproverUpsert) ClearSequenceOrder() *RuleApproverUpsert {
	u.SetNull(ruleapprover.FieldSequenceOrder)
	return u
}

// SetIsRequired sets the "is_required" field.
func (u *RuleApproverUpsert) SetIsRequired(v bool) *RuleApproverUpsert {
	u.Set(ruleapprover.FieldIsRequired, v)
	return u
}

// UpdateIsRequired sets the "is_required" field to the value that was provided on create.
func (u *RuleApproverUpsert) UpdateIsRequired() *RuleApproverUpsert {
	u.SetExcluded(ruleapprover.FieldIsRequired)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ruleapprover.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleApproverUpsertOne) UpdateNewValues() *RuleApproverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ruleapprover.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ruleapprover.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(ruleapprover.FieldRuleID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuleApproverUpsertOne) Ignore() *RuleApproverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleApproverUpsertOne) DoNothing() *RuleApproverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleApproverCreate.OnConflict
// documentation for more info.
func (u *RuleApproverUpsertOne) Update(set func(*RuleApproverUpsert)) *RuleApproverUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleApproverUpsert{UpdateSet: update})
	}))
	return u
}

// SetApproverID sets the "approver_id" field.
func (u *RuleApproverUpsertOne) SetApproverID(v string) *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetApproverID(v)
	})
}

// UpdateApproverID sets the "approver_id" field to the value that was provided on create.
func (u *RuleApproverUpsertOne) UpdateApproverID() *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateApproverID()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *RuleApproverUpsertOne) SetSequenceOrder(v int) *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *RuleApproverUpsertOne) AddSequenceOrder(v int) *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *RuleApproverUpsertOne) UpdateSequenceOrder() *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *RuleApproverUpsertOne) ClearSequenceOrder() *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetIsRequired sets the "is_required" field.
func (u *RuleApproverUpsertOne) SetIsRequired(v bool) *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetIsRequired(v)
	})
}

// UpdateIsRequired sets the "is_required" field to the value that was provided on create.
func (u *RuleApproverUpsertOne) UpdateIsRequired() *RuleApproverUpsertOne {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateIsRequired()
	})
}

// Exec executes the query.
func (u *RuleApproverUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleApproverCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleApproverUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuleApproverUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RuleApproverUpsertOne.ID is not supported by MySQL driver. Use RuleApproverUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuleApproverUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuleApproverCreateBulk is the builder for creating many RuleApprover entities in bulk.
type RuleApproverCreateBulk struct {
	config
	err      error
	builders []*RuleApproverCreate
	conflict []sql.ConflictOption
}

// Save creates the RuleApprover entities in the database.
func (_c *RuleApproverCreateBulk) Save(ctx context.Context) ([]*RuleApprover, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuleApprover, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleApproverMutation)
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
func (_c *RuleApproverCreateBulk) SaveX(ctx context.Context) []*RuleApprover {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleApproverCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleApproverCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleApprover.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleApproverUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleApproverCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuleApproverUpsertBulk {
	_c.conflict = opts
	return &RuleApproverUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleApproverCreateBulk) OnConflictColumns(columns ...string) *RuleApproverUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleApproverUpsertBulk{
		create: _c,
	}
}

// RuleApproverUpsertBulk is the builder for "upsert"-ing
// a bulk of RuleApprover nodes.
type RuleApproverUpsertBulk struct {
	create *RuleApproverCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ruleapprover.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleApproverUpsertBulk) UpdateNewValues() *RuleApproverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ruleapprover.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ruleapprover.FieldCreatedAt)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(ruleapprover.FieldRuleID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleApprover.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuleApproverUpsertBulk) Ignore() *RuleApproverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleApproverUpsertBulk) DoNothing() *RuleApproverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleApproverCreateBulk.OnConflict
// documentation for more info.
func (u *RuleApproverUpsertBulk) Update(set func(*RuleApproverUpsert)) *RuleApproverUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleApproverUpsert{UpdateSet: update})
	}))
	return u
}

// SetApproverID sets the "approver_id" field.
func (u *RuleApproverUpsertBulk) SetApproverID(v string) *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetApproverID(v)
	})
}

// UpdateApproverID sets the "approver_id" field to the value that was provided on create.
func (u *RuleApproverUpsertBulk) UpdateApproverID() *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateApproverID()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *RuleApproverUpsertBulk) SetSequenceOrder(v int) *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *RuleApproverUpsertBulk) AddSequenceOrder(v int) *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *RuleApproverUpsertBulk) UpdateSequenceOrder() *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *RuleApproverUpsertBulk) ClearSequenceOrder() *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetIsRequired sets the "is_required" field.
func (u *RuleApproverUpsertBulk) SetIsRequired(v bool) *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.SetIsRequired(v)
	})
}

// UpdateIsRequired sets the "is_required" field to the value that was provided on create.
func (u *RuleApproverUpsertBulk) UpdateIsRequired() *RuleApproverUpsertBulk {
	return u.Update(func(s *RuleApproverUpsert) {
		s.UpdateIsRequired()
	})
}

// Exec executes the query.
func (u *RuleApproverUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuleApproverCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleApproverCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleApproverUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
