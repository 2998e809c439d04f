// Package domain holds the core workflow types and the pure decision logic of
// the approval engine: rule conditions, applicability evaluation, chain
// planning, and per-rule satisfaction math. Nothing in this package touches
// the database.
package domain

import "time"

// ExpenseStatus is the lifecycle state of an expense.
type ExpenseStatus string

const (
	ExpenseDraft           ExpenseStatus = "DRAFT"
	ExpensePendingApproval ExpenseStatus = "PENDING_APPROVAL"
	ExpenseApproved        ExpenseStatus = "APPROVED"
	ExpenseRejected        ExpenseStatus = "REJECTED"
)

// Terminal reports whether the status admits no further transitions.
func (s ExpenseStatus) Terminal() bool {
	return s == ExpenseApproved || s == ExpenseRejected
}

// Expense is the evaluation view of an expense: the attributes rule
// conditions may reference, with submitter role and department already
// resolved from the user directory.
type Expense struct {
	ID          string
	CompanyID   string
	SubmitterID string

	// Amount is in minor currency units.
	Amount      int64
	Currency    string
	Category    string
	Description string
	ExpenseDate time.Time

	SubmitterRole       string
	SubmitterDepartment string

	Status ExpenseStatus
}
