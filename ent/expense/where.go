// Code generated by ent, DO NOT EDIT.

package expense

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCompanyID, v))
}

// SubmitterID applies equality check predicate on the "submitter_id" field. It's identical to SubmitterIDEQ.
func SubmitterID(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldSubmitterID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCurrency, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCategory, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldDescription, v))
}

// ExpenseDate applies equality check predicate on the "expense_date" field. It's identical to ExpenseDateEQ.
func ExpenseDate(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldExpenseDate, v))
}

// ReceiptURL applies equality check predicate on the "receipt_url" field. It's identical to ReceiptURLEQ.
func ReceiptURL(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldReceiptURL, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldSubmittedAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldCompanyID, v))
}

// SubmitterIDEQ applies the EQ predicate on the "submitter_id" field.
func SubmitterIDEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldSubmitterID, v))
}

// SubmitterIDNEQ applies the NEQ predicate on the "submitter_id" field.
func SubmitterIDNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldSubmitterID, v))
}

// SubmitterIDIn applies the In predicate on the "submitter_id" field.
func SubmitterIDIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldSubmitterID, vs...))
}

// SubmitterIDNotIn applies the NotIn predicate on the "submitter_id" field.
func SubmitterIDNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldSubmitterID, vs...))
}

// SubmitterIDGT applies the GT predicate on the "submitter_id" field.
func SubmitterIDGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldSubmitterID, v))
}

// SubmitterIDGTE applies the GTE predicate on the "submitter_id" field.
func SubmitterIDGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldSubmitterID, v))
}

// SubmitterIDLT applies the LT predicate on the "submitter_id" field.
func SubmitterIDLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldSubmitterID, v))
}

// SubmitterIDLTE applies the LTE predicate on the "submitter_id" field.
func SubmitterIDLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldSubmitterID, v))
}

// SubmitterIDContains applies the Contains predicate on the "submitter_id" field.
func SubmitterIDContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldSubmitterID, v))
}

// SubmitterIDHasPrefix applies the HasPrefix predicate on the "submitter_id" field.
func SubmitterIDHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldSubmitterID, v))
}

// SubmitterIDHasSuffix applies the HasSuffix predicate on the "submitter_id" field.
func SubmitterIDHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldSubmitterID, v))
}

// SubmitterIDEqualFold applies the EqualFold predicate on the "submitter_id" field.
func SubmitterIDEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldSubmitterID, v))
}

// SubmitterIDContainsFold applies the ContainsFold predicate on the "submitter_id" field.
func SubmitterIDContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldSubmitterID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldCurrency, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldCategory, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldDescription, v))
}

// ExpenseDateEQ applies the EQ predicate on the "expense_date" field.
func ExpenseDateEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldExpenseDate, v))
}

// ExpenseDateNEQ applies the NEQ predicate on the "expense_date" field.
func ExpenseDateNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldExpenseDate, v))
}

// ExpenseDateIn applies the In predicate on the "expense_date" field.
func ExpenseDateIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldExpenseDate, vs...))
}

// ExpenseDateNotIn applies the NotIn predicate on the "expense_date" field.
func ExpenseDateNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldExpenseDate, vs...))
}

// ExpenseDateGT applies the GT predicate on the "expense_date" field.
func ExpenseDateGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldExpenseDate, v))
}

// ExpenseDateGTE applies the GTE predicate on the "expense_date" field.
func ExpenseDateGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldExpenseDate, v))
}

// ExpenseDateLT applies the LT predicate on the "expense_date" field.
func ExpenseDateLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldExpenseDate, v))
}

// ExpenseDateLTE applies the LTE predicate on the "expense_date" field.
func ExpenseDateLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldExpenseDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldStatus, vs...))
}

// ReceiptURLEQ applies the EQ predicate on the "receipt_url" field.
func ReceiptURLEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldReceiptURL, v))
}

// ReceiptURLNEQ applies the NEQ predicate on the "receipt_url" field.
func ReceiptURLNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldReceiptURL, v))
}

// ReceiptURLIn applies the In predicate on the "receipt_url" field.
func ReceiptURLIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldReceiptURL, vs...))
}

// ReceiptURLNotIn applies the NotIn predicate on the "receipt_url" field.
func ReceiptURLNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldReceiptURL, vs...))
}

// ReceiptURLGT applies the GT predicate on the "receipt_url" field.
func ReceiptURLGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldReceiptURL, v))
}

// ReceiptURLGTE applies the GTE predicate on the "receipt_url" field.
func ReceiptURLGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldReceiptURL, v))
}

// ReceiptURLLT applies the LT predicate on the "receipt_url" field.
func ReceiptURLLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldReceiptURL, v))
}

// ReceiptURLLTE applies the LTE predicate on the "receipt_url" field.
func ReceiptURLLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldReceiptURL, v))
}

// ReceiptURLContains applies the Contains predicate on the "receipt_url" field.
func ReceiptURLContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldReceiptURL, v))
}

// ReceiptURLHasPrefix applies the HasPrefix predicate on the "receipt_url" field.
func ReceiptURLHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldReceiptURL, v))
}

// ReceiptURLHasSuffix applies the HasSuffix predicate on the "receipt_url" field.
func ReceiptURLHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldReceiptURL, v))
}

// ReceiptURLIsNil applies the IsNil predicate on the "receipt_url" field.
func ReceiptURLIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldReceiptURL))
}

// ReceiptURLNotNil applies the NotNil predicate on the "receipt_url" field.
func ReceiptURLNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldReceiptURL))
}

// ReceiptURLEqualFold applies the EqualFold predicate on the "receipt_url" field.
func ReceiptURLEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldReceiptURL, v))
}

// ReceiptURLContainsFold applies the ContainsFold predicate on the "receipt_url" field.
func ReceiptURLContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldReceiptURL, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldSubmittedAt))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldDecidedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.NotPredicates(p))
}
