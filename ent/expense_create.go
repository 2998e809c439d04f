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
	"expensedesk.io/approvalflow/ent/expense"
)

// ExpenseCreate is the builder for creating a Expense entity.
type ExpenseCreate struct {
	config
	mutation *ExpenseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpenseCreate) SetCreatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCreatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExpenseCreate) SetUpdatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableUpdatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ExpenseCreate) SetCompanyID(v string) *ExpenseCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetSubmitterID sets the "submitter_id" field.
func (_c *ExpenseCreate) SetSubmitterID(v string) *ExpenseCreate {
	_c.mutation.SetSubmitterID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExpenseCreate) SetAmount(v int64) *ExpenseCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ExpenseCreate) SetCurrency(v string) *ExpenseCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExpenseCreate) SetCategory(v string) *ExpenseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExpenseCreate) SetDescription(v string) *ExpenseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableDescription(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetExpenseDate sets the "expense_date" field.
func (_c *ExpenseCreate) SetExpenseDate(v time.Time) *ExpenseCreate {
	_c.mutation.SetExpenseDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExpenseCreate) SetStatus(v expense.Status) *ExpenseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableStatus(v *expense.Status) *ExpenseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReceiptURL sets the "receipt_url" field.
func (_c *ExpenseCreate) SetReceiptURL(v string) *ExpenseCreate {
	_c.mutation.SetReceiptURL(v)
	return _c
}

// SetNillableReceiptURL sets the "receipt_url" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableReceiptURL(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetReceiptURL(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ExpenseCreate) SetSubmittedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableSubmittedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ExpenseCreate) SetDecidedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableDecidedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExpenseCreate) SetID(v string) *ExpenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExpenseMutation object of the builder.
func (_c *ExpenseCreate) Mutation() *ExpenseMutation {
	return _c.mutation
}

// Save creates the Expense in the database.
func (_c *ExpenseCreate) Save(ctx context.Context) (*Expense, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpenseCreate) SaveX(ctx context.Context) *Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpenseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expense.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := expense.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := expense.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpenseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Expense.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Expense.updated_at"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Expense.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := expense.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "Expense.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmitterID(); !ok {
		return &ValidationError{Name: "submitter_id", err: errors.New(`ent: missing required field "Expense.submitter_id"`)}
	}
	if v, ok := _c.mutation.SubmitterID(); ok {
		if err := expense.SubmitterIDValidator(v); err != nil {
			return &ValidationError{Name: "submitter_id", err: fmt.Errorf(`ent: validator failed for field "Expense.submitter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Expense.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Expense.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := expense.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Expense.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Expense.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := expense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Expense.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpenseDate(); !ok {
		return &ValidationError{Name: "expense_date", err: errors.New(`ent: missing required field "Expense.expense_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Expense.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ExpenseCreate) sqlSave(ctx context.Context) (*Expense, error) {
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
			return nil, fmt.Errorf("unexpected Expense.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExpenseCreate) createSpec() (*Expense, *sqlgraph.CreateSpec) {
	var (
		_node = &Expense{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expense.Table, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(expense.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.SubmitterID(); ok {
		_spec.SetField(expense.FieldSubmitterID, field.TypeString, value)
		_node.SubmitterID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ExpenseDate(); ok {
		_spec.SetField(expense.FieldExpenseDate, field.TypeTime, value)
		_node.ExpenseDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReceiptURL(); ok {
		_spec.SetField(expense.FieldReceiptURL, field.TypeString, value)
		_node.ReceiptURL = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(expense.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(expense.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Expense.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExpenseUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExpenseCreate) OnConflict(opts ...sql.ConflictOption) *ExpenseUpsertOne {
	_c.conflict = opts
	return &ExpenseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExpenseCreate) OnConflictColumns(columns ...string) *ExpenseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExpenseUpsertOne{
		create: _c,
	}
}

type (
	// ExpenseUpsertOne is the builder for "upsert"-ing
	//  one Expense node.
	ExpenseUpsertOne struct {
		create *ExpenseCreate
	}

	// ExpenseUpsert is the "OnConflict" setter.
	ExpenseUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ExpenseUpsert) SetUpdatedAt(v time.Time) *ExpenseUpsert {
	u.Set(expense.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateUpdatedAt() *ExpenseUpsert {
	u.SetExcluded(expense.FieldUpdatedAt)
	return u
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsert) SetAmount(v int64) *ExpenseUpsert {
	u.Set(expense.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateAmount() *ExpenseUpsert {
	u.SetExcluded(expense.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsert) AddAmount(v int64) *ExpenseUpsert {
	u.Add(expense.FieldAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *ExpenseUpsert) SetCurrency(v string) *ExpenseUpsert {
	u.Set(expense.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateCurrency() *ExpenseUpsert {
	u.SetExcluded(expense.FieldCurrency)
	return u
}

// SetCategory sets the "category" field.
func (u *ExpenseUpsert) SetCategory(v string) *ExpenseUpsert {
	u.Set(expense.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateCategory() *ExpenseUpsert {
	u.SetExcluded(expense.FieldCategory)
	return u
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsert) SetDescription(v string) *ExpenseUpsert {
	u.Set(expense.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateDescription() *ExpenseUpsert {
	u.SetExcluded(expense.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsert) ClearDescription() *ExpenseUpsert {
	u.SetNull(expense.FieldDescription)
	return u
}

// SetExpenseDate sets the "expense_date" field.
func (u *ExpenseUpsert) SetExpenseDate(v time.Time) *ExpenseUpsert {
	u.Set(expense.FieldExpenseDate, v)
	return u
}

// UpdateExpenseDate sets the "expense_date" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateExpenseDate() *ExpenseUpsert {
	u.SetExcluded(expense.FieldExpenseDate)
	return u
}

// SetStatus sets the "status" field.
func (u *ExpenseUpsert) SetStatus(v expense.Status) *ExpenseUpsert {
	u.Set(expense.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateStatus() *ExpenseUpsert {
	u.SetExcluded(expense.FieldStatus)
	return u
}

// SetReceiptURL sets the "receipt_url" field.
func (u *ExpenseUpsert) SetReceiptURL(v string) *ExpenseUpsert {
	u.Set(expense.FieldReceiptURL, v)
	return u
}

// UpdateReceiptURL sets the "receipt_url" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateReceiptURL() *ExpenseUpsert {
	u.SetExcluded(expense.FieldReceiptURL)
	return u
}

// ClearReceiptURL clears the value of the "receipt_url" field.
func (u *ExpenseUpsert) ClearReceiptURL() *ExpenseUpsert {
	u.SetNull(expense.FieldReceiptURL)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ExpenseUpsert) SetSubmittedAt(v time.Time) *ExpenseUpsert {
	u.Set(expense.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateSubmittedAt() *ExpenseUpsert {
	u.SetExcluded(expense.FieldSubmittedAt)
	return u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ExpenseUpsert) ClearSubmittedAt() *ExpenseUpsert {
	u.SetNull(expense.FieldSubmittedAt)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *ExpenseUpsert) SetDecidedAt(v time.Time) *ExpenseUpsert {
	u.Set(expense.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateDecidedAt() *ExpenseUpsert {
	u.SetExcluded(expense.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ExpenseUpsert) ClearDecidedAt() *ExpenseUpsert {
	u.SetNull(expense.FieldDecidedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(expense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExpenseUpsertOne) UpdateNewValues() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(expense.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(expense.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CompanyID(); exists {
			s.SetIgnore(expense.FieldCompanyID)
		}
		if _, exists := u.create.mutation.SubmitterID(); exists {
			s.SetIgnore(expense.FieldSubmitterID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExpenseUpsertOne) Ignore() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExpenseUpsertOne) DoNothing() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExpenseCreate.OnConflict
// documentation for more info.
func (u *ExpenseUpsertOne) Update(set func(*ExpenseUpsert)) *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExpenseUpsertOne) SetUpdatedAt(v time.Time) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateUpdatedAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsertOne) SetAmount(v int64) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsertOne) AddAmount(v int64) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateAmount() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *ExpenseUpsertOne) SetCurrency(v string) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateCurrency() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateCurrency()
	})
}

// SetCategory sets the "category" field.
func (u *ExpenseUpsertOne) SetCategory(v string) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateCategory() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateCategory()
	})
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsertOne) SetDescription(v string) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateDescription() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsertOne) ClearDescription() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDescription()
	})
}

// SetExpenseDate sets the "expense_date" field.
func (u *ExpenseUpsertOne) SetExpenseDate(v time.Time) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetExpenseDate(v)
	})
}

// UpdateExpenseDate sets the "expense_date" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateExpenseDate() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateExpenseDate()
	})
}

// SetStatus sets the "status" field.
func (u *ExpenseUpsertOne) SetStatus(v expense.Status) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateStatus() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateStatus()
	})
}

// SetReceiptURL sets the "receipt_url" field.
func (u *ExpenseUpsertOne) SetReceiptURL(v string) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetReceiptURL(v)
	})
}

// UpdateReceiptURL sets the "receipt_url" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateReceiptURL() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateReceiptURL()
	})
}

// ClearReceiptURL clears the value of the "receipt_url" field.
func (u *ExpenseUpsertOne) ClearReceiptURL() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearReceiptURL()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ExpenseUpsertOne) SetSubmittedAt(v time.Time) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateSubmittedAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ExpenseUpsertOne) ClearSubmittedAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ExpenseUpsertOne) SetDecidedAt(v time.Time) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateDecidedAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ExpenseUpsertOne) ClearDecidedAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ExpenseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExpenseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExpenseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExpenseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExpenseUpsertOne.ID is not supported by MySQL driver. Use ExpenseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExpenseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExpenseCreateBulk is the builder for creating many Expense entities in bulk.
type ExpenseCreateBulk struct {
	config
	err      error
	builders []*ExpenseCreate
	conflict []sql.ConflictOption
}

// Save creates the Expense entities in the database.
func (_c *ExpenseCreateBulk) Save(ctx context.Context) ([]*Expense, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Expense, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpenseMutation)
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
func (_c *ExpenseCreateBulk) SaveX(ctx context.Context) []*Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Expense.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExpenseUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExpenseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExpenseUpsertBulk {
	_c.conflict = opts
	return &ExpenseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExpenseCreateBulk) OnConflictColumns(columns ...string) *ExpenseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExpenseUpsertBulk{
		create: _c,
	}
}

// ExpenseUpsertBulk is the builder for "upsert"-ing
// a bulk of Expense nodes.
type ExpenseUpsertBulk struct {
	create *ExpenseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(expense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExpenseUpsertBulk) UpdateNewValues() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(expense.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(expense.FieldCreatedAt)
			}
			if _, exists := b.mutation.CompanyID(); exists {
				s.SetIgnore(expense.FieldCompanyID)
			}
			if _, exists := b.mutation.SubmitterID(); exists {
				s.SetIgnore(expense.FieldSubmitterID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExpenseUpsertBulk) Ignore() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExpenseUpsertBulk) DoNothing() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExpenseCreateBulk.OnConflict
// documentation for more info.
func (u *ExpenseUpsertBulk) Update(set func(*ExpenseUpsert)) *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExpenseUpsertBulk) SetUpdatedAt(v time.Time) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateUpdatedAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsertBulk) SetAmount(v int64) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsertBulk) AddAmount(v int64) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateAmount() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *ExpenseUpsertBulk) SetCurrency(v string) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateCurrency() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateCurrency()
	})
}

// SetCategory sets the "category" field.
func (u *ExpenseUpsertBulk) SetCategory(v string) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateCategory() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateCategory()
	})
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsertBulk) SetDescription(v string) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateDescription() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsertBulk) ClearDescription() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDescription()
	})
}

// SetExpenseDate sets the "expense_date" field.
func (u *ExpenseUpsertBulk) SetExpenseDate(v time.Time) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetExpenseDate(v)
	})
}

// UpdateExpenseDate sets the "expense_date" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateExpenseDate() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateExpenseDate()
	})
}

// SetStatus sets the "status" field.
func (u *ExpenseUpsertBulk) SetStatus(v expense.Status) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateStatus() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateStatus()
	})
}

// SetReceiptURL sets the "receipt_url" field.
func (u *ExpenseUpsertBulk) SetReceiptURL(v string) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetReceiptURL(v)
	})
}

// UpdateReceiptURL sets the "receipt_url" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateReceiptURL() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateReceiptURL()
	})
}

// ClearReceiptURL clears the value of the "receipt_url" field.
func (u *ExpenseUpsertBulk) ClearReceiptURL() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearReceiptURL()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ExpenseUpsertBulk) SetSubmittedAt(v time.Time) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateSubmittedAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ExpenseUpsertBulk) ClearSubmittedAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ExpenseUpsertBulk) SetDecidedAt(v time.Time) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateDecidedAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ExpenseUpsertBulk) ClearDecidedAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ExpenseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExpenseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExpenseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExpenseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
