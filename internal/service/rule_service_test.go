package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/rulecondition"
	"expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/domain"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seqOrder(n int) *int { return &n }

func newRuleService(t *testing.T, prefix string) (*RuleService, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	return NewRuleService(client, NewDirectory(client)), client
}

func validInput(approverID string) RuleInput {
	return RuleInput{
		Name:                  "travel over 500",
		Priority:              10,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions: []ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 50_000},
		},
		Approvers: []ApproverInput{
			{ApproverID: approverID, Required: true},
		},
	}
}

func TestConditionPayloadProblem(t *testing.T) {
	tests := []struct {
		name string
		in   ConditionInput
		want string
	}{
		{"valid threshold", ConditionInput{Kind: "AMOUNT_THRESHOLD", MinAmount: 100}, ""},
		{"unbounded max", ConditionInput{Kind: "AMOUNT_THRESHOLD", MinAmount: 100, MaxAmount: 0}, ""},
		{"negative min", ConditionInput{Kind: "AMOUNT_THRESHOLD", MinAmount: -1}, "min_amount must not be negative"},
		{"inverted bounds", ConditionInput{Kind: "AMOUNT_THRESHOLD", MinAmount: 500, MaxAmount: 100}, "max_amount must not be below min_amount"},
		{"valid category", ConditionInput{Kind: "CATEGORY", Values: []string{"TRAVEL"}}, ""},
		{"empty values", ConditionInput{Kind: "DEPARTMENT", Values: nil}, "values must not be empty"},
		{"blank value", ConditionInput{Kind: "SUBMITTER_ROLE", Values: []string{"MANAGER", "  "}}, "values must not contain blanks"},
		{"unknown kind", ConditionInput{Kind: "WEATHER"}, `unknown condition kind "WEATHER"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, conditionPayloadProblem(tt.in))
		})
	}
}

func TestCreateRule_ReportsFieldErrors(t *testing.T) {
	ctx := context.Background()
	svc, client := newRuleService(t, "rules_field_errors")

	company := testutil.CreateCompany(t, client, "acme")
	approver := testutil.CreateUser(t, client, company.ID, "finance")

	in := validInput(approver.ID)
	in.Name = "   "
	in.Conditions = []ConditionInput{{Kind: "CATEGORY"}}

	_, err := svc.CreateRule(ctx, company.ID, "admin", in)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	require.Len(t, appErr.FieldErrors, 2)
	require.Equal(t, "name", appErr.FieldErrors[0].Field)
	require.Equal(t, "conditions[0]", appErr.FieldErrors[1].Field)
}

func TestCreateRule_RejectsInactiveApprover(t *testing.T) {
	ctx := context.Background()
	svc, client := newRuleService(t, "rules_inactive_approver")

	company := testutil.CreateCompany(t, client, "acme")
	former := testutil.CreateUser(t, client, company.ID, "former", testutil.Inactive())

	_, err := svc.CreateRule(ctx, company.ID, "admin", validInput(former.ID))
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidApprover, appErr.Code)
}

func TestUpdateRule_ReplacesPartsWholesale(t *testing.T) {
	ctx := context.Background()
	svc, client := newRuleService(t, "rules_update")

	company := testutil.CreateCompany(t, client, "acme")
	a1 := testutil.CreateUser(t, client, company.ID, "finance1")
	a2 := testutil.CreateUser(t, client, company.ID, "finance2")

	in := validInput(a1.ID)
	in.Conditions = append(in.Conditions, ConditionInput{Kind: "CATEGORY", Values: []string{"TRAVEL"}})
	created, err := svc.CreateRule(ctx, company.ID, "admin", in)
	require.NoError(t, err)
	require.Len(t, created.Conditions, 2)

	updated, err := svc.UpdateRule(ctx, company.ID, created.Rule.ID, "admin", RuleInput{
		Name:                  "travel, sequenced",
		Priority:              20,
		SequenceRequired:      true,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions: []ConditionInput{
			{Kind: "DEPARTMENT", Values: []string{"SALES"}},
		},
		Approvers: []ApproverInput{
			{ApproverID: a2.ID, SequenceOrder: seqOrder(1), Required: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "travel, sequenced", updated.Rule.Name)
	require.Len(t, updated.Conditions, 1)
	require.Equal(t, rulecondition.KindDEPARTMENT, updated.Conditions[0].Kind)
	require.Len(t, updated.Approvers, 1)
	require.Equal(t, a2.ID, updated.Approvers[0].ApproverID)

	// No orphan rows survive the replacement.
	fetched, err := svc.GetRule(ctx, company.ID, created.Rule.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Conditions, 1)
	require.Len(t, fetched.Approvers, 1)
}

func TestLoadActiveRules_MapsUnusableStoredCondition(t *testing.T) {
	ctx := context.Background()
	svc, client := newRuleService(t, "rules_unusable_row")

	company := testutil.CreateCompany(t, client, "acme")
	approver := testutil.CreateUser(t, client, company.ID, "finance")
	admin := testutil.CreateUser(t, client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))

	created, err := svc.CreateRule(ctx, company.ID, admin.ID, validInput(approver.ID))
	require.NoError(t, err)

	// A row written before validation tightened, or mangled out of band.
	client.RuleCondition.Create().
		SetID(testutil.NewID(t)).
		SetRuleID(created.Rule.ID).
		SetKind(rulecondition.KindCATEGORY).
		SaveX(ctx)

	rules, err := svc.LoadActiveRules(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Len(t, rules[0].Conditions, 2)

	var invalid []domain.InvalidCondition
	for _, c := range rules[0].Conditions {
		if ic, ok := c.(domain.InvalidCondition); ok {
			invalid = append(invalid, ic)
		}
	}
	require.Len(t, invalid, 1)
	require.Equal(t, "CATEGORY", invalid[0].RawKind)
	require.Equal(t, "empty values", invalid[0].Reason)
}

func TestListRules_IncludesInactive(t *testing.T) {
	ctx := context.Background()
	svc, client := newRuleService(t, "rules_list_inactive")

	company := testutil.CreateCompany(t, client, "acme")
	approver := testutil.CreateUser(t, client, company.ID, "finance")

	active := validInput(approver.ID)
	_, err := svc.CreateRule(ctx, company.ID, "admin", active)
	require.NoError(t, err)

	disabled := validInput(approver.ID)
	disabled.Name = "disabled rule"
	disabled.Active = false
	_, err = svc.CreateRule(ctx, company.ID, "admin", disabled)
	require.NoError(t, err)

	all, err := svc.ListRules(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	evaluable, err := svc.LoadActiveRules(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, evaluable, 1)
}
