package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/user"
)

// NewID returns a UUIDv7 string, matching production ID generation.
func NewID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("generate uuid: %v", err)
	}
	return id.String()
}

// CreateCompany inserts a tenant row for tests.
func CreateCompany(t *testing.T, client *ent.Client, name string) *ent.Company {
	t.Helper()
	return client.Company.Create().
		SetID(NewID(t)).
		SetName(name).
		SetDefaultCurrency("USD").
		SaveX(context.Background())
}

// UserOption mutates a user create builder.
type UserOption func(*ent.UserCreate)

// WithRole sets the user role.
func WithRole(role user.Role) UserOption {
	return func(c *ent.UserCreate) { c.SetRole(role) }
}

// WithManager sets the reporting manager.
func WithManager(managerID string) UserOption {
	return func(c *ent.UserCreate) { c.SetManagerID(managerID) }
}

// WithDepartment sets the department.
func WithDepartment(dept string) UserOption {
	return func(c *ent.UserCreate) { c.SetDepartment(dept) }
}

// Inactive marks the user as deactivated.
func Inactive() UserOption {
	return func(c *ent.UserCreate) { c.SetActive(false) }
}

// CreateUser inserts a user row for tests. Defaults to an active EMPLOYEE
// with a throwaway password hash.
func CreateUser(t *testing.T, client *ent.Client, companyID, name string, opts ...UserOption) *ent.User {
	t.Helper()
	create := client.User.Create().
		SetID(NewID(t)).
		SetCompanyID(companyID).
		SetName(name).
		SetEmail(name + "-" + NewID(t)[:8] + "@example.test").
		SetPasswordHash("$2a$10$test").
		SetRole(user.RoleEMPLOYEE).
		SetActive(true)
	for _, opt := range opts {
		opt(create)
	}
	return create.SaveX(context.Background())
}

// CreateDraftExpense inserts a DRAFT expense owned by submitterID.
// Amount is in minor currency units.
func CreateDraftExpense(t *testing.T, client *ent.Client, companyID, submitterID string, amount int64, category string) *ent.Expense {
	t.Helper()
	return client.Expense.Create().
		SetID(NewID(t)).
		SetCompanyID(companyID).
		SetSubmitterID(submitterID).
		SetAmount(amount).
		SetCurrency("USD").
		SetCategory(category).
		SetDescription("test expense").
		SetExpenseDate(time.Now().UTC()).
		SaveX(context.Background())
}
