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
	"expensedesk.io/approvalflow/ent/rulecondition"
)

// RuleConditionCreate is the builder for creating a RuleCondition entity.
type RuleConditionCreate struct {
	config
	mutation *RuleConditionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleConditionCreate) SetCreatedAt(v time.Time) *RuleConditionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleConditionCreate) SetNillableCreatedAt(v *time.Time) *RuleConditionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *RuleConditionCreate) SetRuleID(v string) *RuleConditionCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *RuleConditionCreate) SetKind(v rulecondition.Kind) *RuleConditionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMinAmount sets the "min_amount" field.
func (_c *RuleConditionCreate) SetMinAmount(v int64) *RuleConditionCreate {
	_c.mutation.SetMinAmount(v)
	return _c
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_c *RuleConditionCreate) SetNillableMinAmount(v *int64) *RuleConditionCreate {
	if v != nil {
		_c.SetMinAmount(*v)
	}
	return _c
}

// SetMaxAmount sets the "max_amount" field.
func (_c *RuleConditionCreate) SetMaxAmount(v int64) *RuleConditionCreate {
	_c.mutation.SetMaxAmount(v)
	return _c
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_c *RuleConditionCreate) SetNillableMaxAmount(v *int64) *RuleConditionCreate {
	if v != nil {
		_c.SetMaxAmount(*v)
	}
	return _c
}

// SetValues sets the "values" field.
func (_c *RuleConditionCreate) SetValues(v []string) *RuleConditionCreate {
	_c.mutation.SetValues(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RuleConditionCreate) SetID(v string) *RuleConditionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RuleConditionMutation object of the builder.
func (_c *RuleConditionCreate) Mutation() *RuleConditionMutation {
	return _c.mutation
}

// Save creates the RuleCondition in the database.
func (_c *RuleConditionCreate) Save(ctx context.Context) (*RuleCondition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleConditionCreate) SaveX(ctx context.Context) *RuleCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleConditionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleConditionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleConditionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rulecondition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleConditionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RuleCondition.created_at"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "RuleCondition.rule_id"`)}
	}
	if v, ok := _c.mutation.RuleID(); ok {
		if err := rulecondition.RuleIDValidator(v); err != nil {
			return &ValidationError{Name: "rule_id", err: fmt.Errorf(`ent: validator failed for field "RuleCondition.rule_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "RuleCondition.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := rulecondition.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RuleCondition.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *RuleConditionCreate) sqlSave(ctx context.Context) (*RuleCondition, error) {
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
			return nil, fmt.Errorf("unexpected RuleCondition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleConditionCreate) createSpec() (*RuleCondition, *sqlgraph.CreateSpec) {
	var (
		_node = &RuleCondition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rulecondition.Table, sqlgraph.NewFieldSpec(rulecondition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rulecondition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(rulecondition.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(rulecondition.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.MinAmount(); ok {
		_spec.SetField(rulecondition.FieldMinAmount, field.TypeInt64, value)
		_node.MinAmount = value
	}
	if value, ok := _c.mutation.MaxAmount(); ok {
		_spec.SetField(rulecondition.FieldMaxAmount, field.TypeInt64, value)
		_node.MaxAmount = value
	}
	if value, ok := _c.mutation.Values(); ok {
		_spec.SetField(rulecondition.FieldValues, field.TypeJSON, value)
		_node.Values = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleCondition.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleConditionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleConditionCreate) OnConflict(opts ...sql.ConflictOption) *RuleConditionUpsertOne {
	_c.conflict = opts
	return &RuleConditionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleConditionCreate) OnConflictColumns(columns ...string) *RuleConditionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleConditionUpsertOne{
		create: _c,
	}
}

type (
	// RuleConditionUpsertOne is the builder for "upsert"-ing
	//  one RuleCondition node.
	RuleConditionUpsertOne struct {
		create *RuleConditionCreate
	}

	// RuleConditionUpsert is the "OnConflict" setter.
	RuleConditionUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *RuleConditionUpsert) SetKind(v rulecondition.Kind) *RuleConditionUpsert {
	u.Set(rulecondition.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *RuleConditionUpsert) UpdateKind() *RuleConditionUpsert {
	u.SetExcluded(rulecondition.FieldKind)
	return u
}

// SetMinAmount sets the "min_amount" field.
func (u *RuleConditionUpsert) SetMinAmount(v int64) *RuleConditionUpsert {
	u.Set(rulecondition.FieldMinAmount, v)
	return u
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *RuleConditionUpsert) UpdateMinAmount() *RuleConditionUpsert {
	u.SetExcluded(rulecondition.FieldMinAmount)
	return u
}

// AddMinAmount adds v to the "min_amount" field.
func (u *RuleConditionUpsert) AddMinAmount(v int64) *RuleConditionUpsert {
	u.Add(rulecondition.FieldMinAmount, v)
	return u
}

// ClearMinAmount clears the value of the "min_amount" field.
func (u *RuleConditionUpsert) ClearMinAmount() *RuleConditionUpsert {
	u.SetNull(rulecondition.FieldMinAmount)
	return u
}

// SetMaxAmount sets the "max_amount" field.
func (u *RuleConditionUpsert) SetMaxAmount(v int64) *RuleConditionUpsert {
	u.Set(rulecondition.FieldMaxAmount, v)
	return u
}

// UpdateMaxAmount sets the "max_amount" field to the value that was provided on create.
func (u *RuleConditionUpsert) UpdateMaxAmount() *RuleConditionUpsert {
	u.SetExcluded(rulecondition.FieldMaxAmount)
	return u
}

// AddMaxAmount adds v to the "max_amount" field.
func (u *RuleConditionUpsert) AddMaxAmount(v int64) *RuleConditionUpsert {
	u.Add(rulecondition.FieldMaxAmount, v)
	return u
}

// ClearMaxAmount clears the value of the "max_amount" field.
func (u *RuleConditionUpsert) ClearMaxAmount() *RuleConditionUpsert {
	u.SetNull(rulecondition.FieldMaxAmount)
	return u
}

// SetValues sets the "values" field.
func (u *RuleConditionUpsert) SetValues(v []string) *RuleConditionUpsert {
	u.Set(rulecondition.FieldValues, v)
	return u
}

// UpdateValues sets the "values" field to the value that was provided on create.
func (u *RuleConditionUpsert) UpdateValues() *RuleConditionUpsert {
	u.SetExcluded(rulecondition.FieldValues)
	return u
}

// ClearValues clears the value of the "values" field.
func (u *RuleConditionUpsert) ClearValues() *RuleConditionUpsert {
	u.SetNull(rulecondition.FieldValues)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rulecondition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleConditionUpsertOne) UpdateNewValues() *RuleConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rulecondition.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rulecondition.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(rulecondition.FieldRuleID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuleConditionUpsertOne) Ignore() *RuleConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleConditionUpsertOne) DoNothing() *RuleConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleConditionCreate.OnConflict
// documentation for more info.
func (u *RuleConditionUpsertOne) Update(set func(*RuleConditionUpsert)) *RuleConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *RuleConditionUpsertOne) SetKind(v rulecondition.Kind) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *RuleConditionUpsertOne) UpdateKind() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateKind()
	})
}

// SetMinAmount sets the "min_amount" field.
func (u *RuleConditionUpsertOne) SetMinAmount(v int64) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetMinAmount(v)
	})
}

// AddMinAmount adds v to the "min_amount" field.
func (u *RuleConditionUpsertOne) AddMinAmount(v int64) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.AddMinAmount(v)
	})
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *RuleConditionUpsertOne) UpdateMinAmount() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateMinAmount()
	})
}

// ClearMinAmount clears the value of the "min_amount" field.
func (u *RuleConditionUpsertOne) ClearMinAmount() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearMinAmount()
	})
}

// SetMaxAmount sets the "max_amount" field.
func (u *RuleConditionUpsertOne) SetMaxAmount(v int64) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetMaxAmount(v)
	})
}

// AddMaxAmount adds v to the "max_amount" field.
func (u *RuleConditionUpsertOne) AddMaxAmount(v int64) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.AddMaxAmount(v)
	})
}

// UpdateMaxAmount sets the "max_amount" field to the value that was provided on create.
func (u *RuleConditionUpsertOne) UpdateMaxAmount() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateMaxAmount()
	})
}

// ClearMaxAmount clears the value of the "max_amount" field.
func (u *RuleConditionUpsertOne) ClearMaxAmount() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearMaxAmount()
	})
}

// SetValues sets the "values" field.
func (u *RuleConditionUpsertOne) SetValues(v []string) *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetValues(v)
	})
}

// UpdateValues sets the "values" field to the value that was provided on create.
func (u *RuleConditionUpsertOne) UpdateValues() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateValues()
	})
}

// ClearValues clears the value of the "values" field.
func (u *RuleConditionUpsertOne) ClearValues() *RuleConditionUpsertOne {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearValues()
	})
}

// Exec executes the query.
func (u *RuleConditionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleConditionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleConditionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuleConditionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RuleConditionUpsertOne.ID is not supported by MySQL driver. Use RuleConditionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuleConditionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuleConditionCreateBulk is the builder for creating many RuleCondition entities in bulk.
type RuleConditionCreateBulk struct {
	config
	err      error
	builders []*RuleConditionCreate
	conflict []sql.ConflictOption
}

// Save creates the RuleCondition entities in the database.
func (_c *RuleConditionCreateBulk) Save(ctx context.Context) ([]*RuleCondition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuleCondition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleConditionMutation)
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
func (_c *RuleConditionCreateBulk) SaveX(ctx context.Context) []*RuleCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleConditionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleConditionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleCondition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleConditionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleConditionCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuleConditionUpsertBulk {
	_c.conflict = opts
	return &RuleConditionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleConditionCreateBulk) OnConflictColumns(columns ...string) *RuleConditionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleConditionUpsertBulk{
		create: _c,
	}
}

// RuleConditionUpsertBulk is the builder for "upsert"-ing
// a bulk of RuleCondition nodes.
type RuleConditionUpsertBulk struct {
	create *RuleConditionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rulecondition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleConditionUpsertBulk) UpdateNewValues() *RuleConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rulecondition.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rulecondition.FieldCreatedAt)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(rulecondition.FieldRuleID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleCondition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuleConditionUpsertBulk) Ignore() *RuleConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleConditionUpsertBulk) DoNothing() *RuleConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleConditionCreateBulk.OnConflict
// documentation for more info.
func (u *RuleConditionUpsertBulk) Update(set func(*RuleConditionUpsert)) *RuleConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *RuleConditionUpsertBulk) SetKind(v rulecondition.Kind) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *RuleConditionUpsertBulk) UpdateKind() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateKind()
	})
}

// SetMinAmount sets the "min_amount" field.
func (u *RuleConditionUpsertBulk) SetMinAmount(v int64) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetMinAmount(v)
	})
}

// AddMinAmount adds v to the "min_amount" field.
func (u *RuleConditionUpsertBulk) AddMinAmount(v int64) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.AddMinAmount(v)
	})
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *RuleConditionUpsertBulk) UpdateMinAmount() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateMinAmount()
	})
}

// ClearMinAmount clears the value of the "min_amount" field.
func (u *RuleConditionUpsertBulk) ClearMinAmount() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearMinAmount()
	})
}

// SetMaxAmount sets the "max_amount" field.
func (u *RuleConditionUpsertBulk) SetMaxAmount(v int64) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetMaxAmount(v)
	})
}

// AddMaxAmount adds v to the "max_amount" field.
func (u *RuleConditionUpsertBulk) AddMaxAmount(v int64) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.AddMaxAmount(v)
	})
}

// UpdateMaxAmount sets the "max_amount" field to the value that was provided on create.
func (u *RuleConditionUpsertBulk) UpdateMaxAmount() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateMaxAmount()
	})
}

// ClearMaxAmount clears the value of the "max_amount" field.
func (u *RuleConditionUpsertBulk) ClearMaxAmount() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearMaxAmount()
	})
}

// SetValues sets the "values" field.
func (u *RuleConditionUpsertBulk) SetValues(v []string) *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.SetValues(v)
	})
}

// UpdateValues sets the "values" field to the value that was provided on create.
func (u *RuleConditionUpsertBulk) UpdateValues() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.UpdateValues()
	})
}

// ClearValues clears the value of the "values" field.
func (u *RuleConditionUpsertBulk) ClearValues() *RuleConditionUpsertBulk {
	return u.Update(func(s *RuleConditionUpsert) {
		s.ClearValues()
	})
}

// Exec executes the query.
func (u *RuleConditionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuleConditionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleConditionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleConditionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
