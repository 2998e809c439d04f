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
	"expensedesk.io/approvalflow/ent/approvalrule"
)

// ApprovalRuleCreate is the builder for creating a ApprovalRule entity.
type ApprovalRuleCreate struct {
	config
	mutation *ApprovalRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRuleCreate) SetCreatedAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalRuleCreate) SetUpdatedAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ApprovalRuleCreate) SetCompanyID(v string) *ApprovalRuleCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ApprovalRuleCreate) SetName(v string) *ApprovalRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalRuleCreate) SetDescription(v string) *ApprovalRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableDescription(v *string) *ApprovalRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ApprovalRuleCreate) SetPriority(v int) *ApprovalRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillablePriority(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (_c *ApprovalRuleCreate) SetIsManagerApprovalRequired(v bool) *ApprovalRuleCreate {
	_c.mutation.SetIsManagerApprovalRequired(v)
	return _c
}

// SetNillableIsManagerApprovalRequired sets the "is_manager_approval_required" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableIsManagerApprovalRequired(v *bool) *ApprovalRuleCreate {
	if v != nil {
		_c.SetIsManagerApprovalRequired(*v)
	}
	return _c
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (_c *ApprovalRuleCreate) SetIsSequenceRequired(v bool) *ApprovalRuleCreate {
	_c.mutation.SetIsSequenceRequired(v)
	return _c
}

// SetNillableIsSequenceRequired sets the "is_sequence_required" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableIsSequenceRequired(v *bool) *ApprovalRuleCreate {
	if v != nil {
		_c.SetIsSequenceRequired(*v)
	}
	return _c
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (_c *ApprovalRuleCreate) SetMinApprovalPercentage(v int) *ApprovalRuleCreate {
	_c.mutation.SetMinApprovalPercentage(v)
	return _c
}

// SetNillableMinApprovalPercentage sets the "min_approval_percentage" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableMinApprovalPercentage(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetMinApprovalPercentage(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ApprovalRuleCreate) SetActive(v bool) *ApprovalRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableActive(v *bool) *ApprovalRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ApprovalRuleCreate) SetCreatedBy(v string) *ApprovalRuleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRuleCreate) SetID(v string) *ApprovalRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_c *ApprovalRuleCreate) Mutation() *ApprovalRuleMutation {
	return _c.mutation
}

// Save creates the ApprovalRule in the database.
func (_c *ApprovalRuleCreate) Save(ctx context.Context) (*ApprovalRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRuleCreate) SaveX(ctx context.Context) *ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approvalrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := approvalrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsManagerApprovalRequired(); !ok {
		v := approvalrule.DefaultIsManagerApprovalRequired
		_c.mutation.SetIsManagerApprovalRequired(v)
	}
	if _, ok := _c.mutation.IsSequenceRequired(); !ok {
		v := approvalrule.DefaultIsSequenceRequired
		_c.mutation.SetIsSequenceRequired(v)
	}
	if _, ok := _c.mutation.MinApprovalPercentage(); !ok {
		v := approvalrule.DefaultMinApprovalPercentage
		_c.mutation.SetMinApprovalPercentage(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := approvalrule.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApprovalRule.updated_at"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "ApprovalRule.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := approvalrule.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ApprovalRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := approvalrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ApprovalRule.priority"`)}
	}
	if _, ok := _c.mutation.IsManagerApprovalRequired(); !ok {
		return &ValidationError{Name: "is_manager_approval_required", err: errors.New(`ent: missing required field "ApprovalRule.is_manager_approval_required"`)}
	}
	if _, ok := _c.mutation.IsSequenceRequired(); !ok {
		return &ValidationError{Name: "is_sequence_required", err: errors.New(`ent: missing required field "ApprovalRule.is_sequence_required"`)}
	}
	if _, ok := _c.mutation.MinApprovalPercentage(); !ok {
		return &ValidationError{Name: "min_approval_percentage", err: errors.New(`ent: missing required field "ApprovalRule.min_approval_percentage"`)}
	}
	if v, ok := _c.mutation.MinApprovalPercentage(); ok {
		if err := approvalrule.MinApprovalPercentageValidator(v); err != nil {
			return &ValidationError{Name: "min_approval_percentage", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.min_approval_percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ApprovalRule.active"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ApprovalRule.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := approvalrule.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *ApprovalRuleCreate) sqlSave(ctx context.Context) (*ApprovalRule, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRuleCreate) createSpec() (*ApprovalRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrule.Table, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(approvalrule.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(approvalrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(approvalrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsManagerApprovalRequired(); ok {
		_spec.SetField(approvalrule.FieldIsManagerApprovalRequired, field.TypeBool, value)
		_node.IsManagerApprovalRequired = value
	}
	if value, ok := _c.mutation.IsSequenceRequired(); ok {
		_spec.SetField(approvalrule.FieldIsSequenceRequired, field.TypeBool, value)
		_node.IsSequenceRequired = value
	}
	if value, ok := _c.mutation.MinApprovalPercentage(); ok {
		_spec.SetField(approvalrule.FieldMinApprovalPercentage, field.TypeInt, value)
		_node.MinApprovalPercentage = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(approvalrule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRuleCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalRuleUpsertOne {
	_c.conflict = opts
	return &ApprovalRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRuleCreate) OnConflictColumns(columns ...string) *ApprovalRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRuleUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalRuleUpsertOne is the builder for "upsert"-ing
	//  one ApprovalRule node.
	ApprovalRuleUpsertOne struct {
		create *ApprovalRuleCreate
	}

	// ApprovalRuleUpsert is the "OnConflict" setter.
	ApprovalRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalRuleUpsert) SetUpdatedAt(v time.Time) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateUpdatedAt() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *ApprovalRuleUpsert) SetName(v string) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateName() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ApprovalRuleUpsert) SetDescription(v string) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateDescription() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ApprovalRuleUpsert) ClearDescription() *ApprovalRuleUpsert {
	u.SetNull(approvalrule.FieldDescription)
	return u
}

// SetPriority sets the "priority" field.
func (u *ApprovalRuleUpsert) SetPriority(v int) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdatePriority() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *ApprovalRuleUpsert) AddPriority(v int) *ApprovalRuleUpsert {
	u.Add(approvalrule.FieldPriority, v)
	return u
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (u *ApprovalRuleUpsert) SetIsManagerApprovalRequired(v bool) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldIsManagerApprovalRequired, v)
	return u
}

// UpdateIsManagerApprovalRequired sets the "is_manager_approval_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateIsManagerApprovalRequired() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldIsManagerApprovalRequired)
	return u
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (u *ApprovalRuleUpsert) SetIsSequenceRequired(v bool) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldIsSequenceRequired, v)
	return u
}

// UpdateIsSequenceRequired sets the "is_sequence_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateIsSequenceRequired() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldIsSequenceRequired)
	return u
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (u *ApprovalRuleUpsert) SetMinApprovalPercentage(v int) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldMinApprovalPercentage, v)
	return u
}

// UpdateMinApprovalPercentage sets the "min_approval_percentage" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateMinApprovalPercentage() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldMinApprovalPercentage)
	return u
}

// AddMinApprovalPercentage adds v to the "min_approval_percentage" field.
func (u *ApprovalRuleUpsert) AddMinApprovalPercentage(v int) *ApprovalRuleUpsert {
	u.Add(approvalrule.FieldMinApprovalPercentage, v)
	return u
}

// SetActive sets the "active" field.
func (u *ApprovalRuleUpsert) SetActive(v bool) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateActive() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldActive)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *ApprovalRuleUpsert) SetCreatedBy(v string) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateCreatedBy() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldCreatedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRuleUpsertOne) UpdateNewValues() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalrule.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CompanyID(); exists {
			s.SetIgnore(approvalrule.FieldCompanyID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalRuleUpsertOne) Ignore() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRuleUpsertOne) DoNothing() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRuleCreate.OnConflict
// documentation for more info.
func (u *ApprovalRuleUpsertOne) Update(set func(*ApprovalRuleUpsert)) *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalRuleUpsertOne) SetUpdatedAt(v time.Time) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateUpdatedAt() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *ApprovalRuleUpsertOne) SetName(v string) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateName() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ApprovalRuleUpsertOne) SetDescription(v string) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateDescription() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ApprovalRuleUpsertOne) ClearDescription() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *ApprovalRuleUpsertOne) SetPriority(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ApprovalRuleUpsertOne) AddPriority(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdatePriority() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdatePriority()
	})
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (u *ApprovalRuleUpsertOne) SetIsManagerApprovalRequired(v bool) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetIsManagerApprovalRequired(v)
	})
}

// UpdateIsManagerApprovalRequired sets the "is_manager_approval_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateIsManagerApprovalRequired() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateIsManagerApprovalRequired()
	})
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (u *ApprovalRuleUpsertOne) SetIsSequenceRequired(v bool) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetIsSequenceRequired(v)
	})
}

// UpdateIsSequenceRequired sets the "is_sequence_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateIsSequenceRequired() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateIsSequenceRequired()
	})
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (u *ApprovalRuleUpsertOne) SetMinApprovalPercentage(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetMinApprovalPercentage(v)
	})
}

// AddMinApprovalPercentage adds v to the "min_approval_percentage" field.
func (u *ApprovalRuleUpsertOne) AddMinApprovalPercentage(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddMinApprovalPercentage(v)
	})
}

// UpdateMinApprovalPercentage sets the "min_approval_percentage" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateMinApprovalPercentage() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateMinApprovalPercentage()
	})
}

// SetActive sets the "active" field.
func (u *ApprovalRuleUpsertOne) SetActive(v bool) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateActive() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateActive()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ApprovalRuleUpsertOne) SetCreatedBy(v string) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateCreatedBy() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// Exec executes the query.
func (u *ApprovalRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalRuleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalRuleUpsertOne.ID is not supported by MySQL driver. Use ApprovalRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalRuleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalRuleCreateBulk is the builder for creating many ApprovalRule entities in bulk.
type ApprovalRuleCreateBulk struct {
	config
	err      error
	builders []*ApprovalRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalRule entities in the database.
func (_c *ApprovalRuleCreateBulk) Save(ctx context.Context) ([]*ApprovalRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRuleMutation)
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
func (_c *ApprovalRuleCreateBulk) SaveX(ctx context.Context) []*ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalRuleUpsertBulk {
	_c.conflict = opts
	return &ApprovalRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRuleCreateBulk) OnConflictColumns(columns ...string) *ApprovalRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRuleUpsertBulk{
		create: _c,
	}
}

// ApprovalRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalRule nodes.
type ApprovalRuleUpsertBulk struct {
	create *ApprovalRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRuleUpsertBulk) UpdateNewValues() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalrule.FieldCreatedAt)
			}
			if _, exists := b.mutation.CompanyID(); exists {
				s.SetIgnore(approvalrule.FieldCompanyID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalRuleUpsertBulk) Ignore() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRuleUpsertBulk) DoNothing() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRuleCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalRuleUpsertBulk) Update(set func(*ApprovalRuleUpsert)) *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApprovalRuleUpsertBulk) SetUpdatedAt(v time.Time) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateUpdatedAt() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *ApprovalRuleUpsertBulk) SetName(v string) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateName() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ApprovalRuleUpsertBulk) SetDescription(v string) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateDescription() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ApprovalRuleUpsertBulk) ClearDescription() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *ApprovalRuleUpsertBulk) SetPriority(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ApprovalRuleUpsertBulk) AddPriority(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdatePriority() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdatePriority()
	})
}

// SetIsManagerApprovalRequired sets the "is_manager_approval_required" field.
func (u *ApprovalRuleUpsertBulk) SetIsManagerApprovalRequired(v bool) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetIsManagerApprovalRequired(v)
	})
}

// UpdateIsManagerApprovalRequired sets the "is_manager_approval_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateIsManagerApprovalRequired() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateIsManagerApprovalRequired()
	})
}

// SetIsSequenceRequired sets the "is_sequence_required" field.
func (u *ApprovalRuleUpsertBulk) SetIsSequenceRequired(v bool) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetIsSequenceRequired(v)
	})
}

// UpdateIsSequenceRequired sets the "is_sequence_required" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateIsSequenceRequired() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateIsSequenceRequired()
	})
}

// SetMinApprovalPercentage sets the "min_approval_percentage" field.
func (u *ApprovalRuleUpsertBulk) SetMinApprovalPercentage(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetMinApprovalPercentage(v)
	})
}

// AddMinApprovalPercentage adds v to the "min_approval_percentage" field.
func (u *ApprovalRuleUpsertBulk) AddMinApprovalPercentage(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddMinApprovalPercentage(v)
	})
}

// UpdateMinApprovalPercentage sets the "min_approval_percentage" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateMinApprovalPercentage() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateMinApprovalPercentage()
	})
}

// SetActive sets the "active" field.
func (u *ApprovalRuleUpsertBulk) SetActive(v bool) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateActive() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateActive()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ApprovalRuleUpsertBulk) SetCreatedBy(v string) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateCreatedBy() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// Exec executes the query.
func (u *ApprovalRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
