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
	"expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ExpenseUpdate is the builder for updating Expense entities.
type ExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseMutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdate) Where(ps ...predicate.Expense) *ExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdate) SetUpdatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdate) SetAmount(v int64) *ExpenseUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableAmount(v *int64) *ExpenseUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdate) AddAmount(v int64) *ExpenseUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExpenseUpdate) SetCurrency(v string) *ExpenseUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCurrency(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdate) SetCategory(v string) *ExpenseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCategory(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseUpdate) SetDescription(v string) *ExpenseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableDescription(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseUpdate) ClearDescription() *ExpenseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetExpenseDate sets the "expense_date" field.
func (_u *ExpenseUpdate) SetExpenseDate(v time.Time) *ExpenseUpdate {
	_u.mutation.SetExpenseDate(v)
	return _u
}

// SetNillableExpenseDate sets the "expense_date" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableExpenseDate(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetExpenseDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdate) SetStatus(v expense.Status) *ExpenseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableStatus(v *expense.Status) *ExpenseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReceiptURL sets the "receipt_url" field.
func (_u *ExpenseUpdate) SetReceiptURL(v string) *ExpenseUpdate {
	_u.mutation.SetReceiptURL(v)
	return _u
}

// SetNillableReceiptURL sets the "receipt_url" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableReceiptURL(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetReceiptURL(*v)
	}
	return _u
}

// ClearReceiptURL clears the value of the "receipt_url" field.
func (_u *ExpenseUpdate) ClearReceiptURL() *ExpenseUpdate {
	_u.mutation.ClearReceiptURL()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExpenseUpdate) SetSubmittedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableSubmittedAt(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExpenseUpdate) ClearSubmittedAt() *ExpenseUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ExpenseUpdate) SetDecidedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableDecidedAt(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ExpenseUpdate) ClearDecidedAt() *ExpenseUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdate) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := expense.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Expense.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Expense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExpenseDate(); ok {
		_spec.SetField(expense.FieldExpenseDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiptURL(); ok {
		_spec.SetField(expense.FieldReceiptURL, field.TypeString, value)
	}
	if _u.mutation.ReceiptURLCleared() {
		_spec.ClearField(expense.FieldReceiptURL, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(expense.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(expense.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(expense.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(expense.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseUpdateOne is the builder for updating a single Expense entity.
type ExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdateOne) SetUpdatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdateOne) SetAmount(v int64) *ExpenseUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableAmount(v *int64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdateOne) AddAmount(v int64) *ExpenseUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExpenseUpdateOne) SetCurrency(v string) *ExpenseUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCurrency(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdateOne) SetCategory(v string) *ExpenseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCategory(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseUpdateOne) SetDescription(v string) *ExpenseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableDescription(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseUpdateOne) ClearDescription() *ExpenseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetExpenseDate sets the "expense_date" field.
func (_u *ExpenseUpdateOne) SetExpenseDate(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetExpenseDate(v)
	return _u
}

// SetNillableExpenseDate sets the "expense_date" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableExpenseDate(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetExpenseDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdateOne) SetStatus(v expense.Status) *ExpenseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableStatus(v *expense.Status) *ExpenseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReceiptURL sets the "receipt_url" field.
func (_u *ExpenseUpdateOne) SetReceiptURL(v string) *ExpenseUpdateOne {
	_u.mutation.SetReceiptURL(v)
	return _u
}

// SetNillableReceiptURL sets the "receipt_url" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableReceiptURL(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetReceiptURL(*v)
	}
	return _u
}

// ClearReceiptURL clears the value of the "receipt_url" field.
func (_u *ExpenseUpdateOne) ClearReceiptURL() *ExpenseUpdateOne {
	_u.mutation.ClearReceiptURL()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExpenseUpdateOne) SetSubmittedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableSubmittedAt(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExpenseUpdateOne) ClearSubmittedAt() *ExpenseUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ExpenseUpdateOne) SetDecidedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableDecidedAt(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ExpenseUpdateOne) ClearDecidedAt() *ExpenseUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdateOne) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdateOne) Where(ps ...predicate.Expense) *ExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseUpdateOne) Select(field string, fields ...string) *ExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Expense entity.
func (_u *ExpenseUpdateOne) Save(ctx context.Context) (*Expense, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdateOne) SaveX(ctx context.Context) *Expense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := expense.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Expense.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Expense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdateOne) sqlSave(ctx context.Context) (_node *Expense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Expense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expense.FieldID)
		for _, f := range fields {
			if !expense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expense.FieldID {
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
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExpenseDate(); ok {
		_spec.SetField(expense.FieldExpenseDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiptURL(); ok {
		_spec.SetField(expense.FieldReceiptURL, field.TypeString, value)
	}
	if _u.mutation.ReceiptURLCleared() {
		_spec.ClearField(expense.FieldReceiptURL, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(expense.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(expense.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(expense.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(expense.FieldDecidedAt, field.TypeTime)
	}
	_node = &Expense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
