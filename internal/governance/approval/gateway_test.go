package approval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"expensedesk.io/approvalflow/ent"
	entauditlog "expensedesk.io/approvalflow/ent/auditlog"
	entexpense "expensedesk.io/approvalflow/ent/expense"
	entnotification "expensedesk.io/approvalflow/ent/notification"
	"expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/domain"
	"expensedesk.io/approvalflow/internal/governance/audit"
	"expensedesk.io/approvalflow/internal/notification"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
	"expensedesk.io/approvalflow/internal/testutil"
	"expensedesk.io/approvalflow/internal/usecase"
)

func init() {
	_ = logger.Init("error", "json")
}

func seq(n int) *int { return &n }

type gatewayEnv struct {
	client  *ent.Client
	rules   *service.RuleService
	gateway *Gateway
}

// newGatewayEnv wires the gateway the way bootstrap does, without worker
// pools so events dispatch synchronously and assertions see their effects.
func newGatewayEnv(t *testing.T, prefix string) *gatewayEnv {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	directory := service.NewDirectory(client)
	rules := service.NewRuleService(client, directory)

	dispatcher := domain.NewEventDispatcher()
	notification.RegisterHandlers(dispatcher, notification.NewTriggers(notification.NewInboxSender(client)))

	gateway := NewGateway(client,
		usecase.NewSubmitExpense(client, directory, rules),
		usecase.NewRecordDecision(client),
		audit.NewLogger(client),
		dispatcher,
		nil,
	)
	return &gatewayEnv{client: client, rules: rules, gateway: gateway}
}

func (e *gatewayEnv) notifications(t *testing.T, recipientID string, notifType entnotification.Type) []*ent.Notification {
	t.Helper()
	rows, err := e.client.Notification.Query().
		Where(entnotification.RecipientID(recipientID), entnotification.TypeEQ(notifType)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func (e *gatewayEnv) auditActions(t *testing.T, companyID, action string) []*ent.AuditLog {
	t.Helper()
	rows, err := e.client.AuditLog.Query().
		Where(entauditlog.CompanyID(companyID), entauditlog.Action(action)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func (e *gatewayEnv) catchAllRule(t *testing.T, companyID, actorID string, approvers []service.ApproverInput, sequential bool) {
	t.Helper()
	_, err := e.rules.CreateRule(context.Background(), companyID, actorID, service.RuleInput{
		Name:                  "catch-all",
		Priority:              10,
		SequenceRequired:      sequential,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions: []service.ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 1},
		},
		Approvers: approvers,
	})
	require.NoError(t, err)
}

func TestGateway_SubmitNotifiesApproversAndAudits(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_submit")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	approver := testutil.CreateUser(t, env.client, company.ID, "finance")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	env.catchAllRule(t, company.ID, admin.ID, []service.ApproverInput{
		{ApproverID: approver.ID, Required: true},
	}, false)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 12_000, "MEALS")
	res, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.False(t, res.AutoApproved)

	pending := env.notifications(t, approver.ID, entnotification.TypeAPPROVAL_PENDING)
	require.Len(t, pending, 1)
	require.Equal(t, exp.ID, pending[0].ResourceID)
	require.Contains(t, pending[0].Message, "alice")

	require.Len(t, env.auditActions(t, company.ID, "expense.submitted"), 1)
}

func TestGateway_AutoApproveNotifiesSubmitter(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_auto")

	company := testutil.CreateCompany(t, env.client, "acme")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 3_000, "MEALS")
	res, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.True(t, res.AutoApproved)

	auto := env.notifications(t, employee.ID, entnotification.TypeEXPENSE_AUTO_APPROVED)
	require.Len(t, auto, 1)
	require.Equal(t, exp.ID, auto[0].ResourceID)

	require.Len(t, env.auditActions(t, company.ID, "expense.auto_approved"), 1)
}

func TestGateway_RejectNotifiesSubmitterWithReason(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_reject")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	approver := testutil.CreateUser(t, env.client, company.ID, "bob")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	env.catchAllRule(t, company.ID, admin.ID, []service.ApproverInput{
		{ApproverID: approver.ID, Required: true},
	}, false)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 9_000, "TRAVEL")
	res, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 1)

	dec, err := env.gateway.Decide(ctx, company.ID, approver.ID, res.Approvals[0].ID, usecase.DecisionReject, "missing receipt")
	require.NoError(t, err)
	require.Equal(t, domain.ChainRejected, dec.Outcome)
	require.Equal(t, entexpense.StatusREJECTED, dec.Expense.Status)

	rejected := env.notifications(t, employee.ID, entnotification.TypeEXPENSE_REJECTED)
	require.Len(t, rejected, 1)
	require.Contains(t, rejected[0].Message, "bob")
	require.Contains(t, rejected[0].Message, "missing receipt")

	require.Len(t, env.auditActions(t, company.ID, "approval.rejected"), 1)
	require.Len(t, env.auditActions(t, company.ID, "expense.rejected"), 1)
}

func TestGateway_ApprovalUnblocksNextSequenceStep(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_sequence")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	first := testutil.CreateUser(t, env.client, company.ID, "first")
	second := testutil.CreateUser(t, env.client, company.ID, "second")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	env.catchAllRule(t, company.ID, admin.ID, []service.ApproverInput{
		{ApproverID: first.ID, SequenceOrder: seq(1), Required: true},
		{ApproverID: second.ID, SequenceOrder: seq(2), Required: true},
	}, true)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 20_000, "TRAVEL")
	res, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Equal(t, []string{first.ID}, res.ActionableApprovers)

	// Second approver hears nothing until the head of the sequence decided.
	require.Empty(t, env.notifications(t, second.ID, entnotification.TypeAPPROVAL_PENDING))

	var headTask *ent.Approval
	for _, a := range res.Approvals {
		if a.ApproverID == first.ID {
			headTask = a
		}
	}
	require.NotNil(t, headTask)

	dec, err := env.gateway.Decide(ctx, company.ID, first.ID, headTask.ID, usecase.DecisionApprove, "")
	require.NoError(t, err)
	require.Equal(t, []string{second.ID}, dec.NewlyActionable)

	require.Len(t, env.notifications(t, second.ID, entnotification.TypeAPPROVAL_PENDING), 1)
}

func TestGateway_ListPendingSkipsBlockedSequenceTasks(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_pending")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	first := testutil.CreateUser(t, env.client, company.ID, "first")
	second := testutil.CreateUser(t, env.client, company.ID, "second")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	env.catchAllRule(t, company.ID, admin.ID, []service.ApproverInput{
		{ApproverID: first.ID, SequenceOrder: seq(1), Required: true},
		{ApproverID: second.ID, SequenceOrder: seq(2), Required: true},
	}, true)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 15_000, "SUPPLIES")
	_, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)

	headTasks, err := env.gateway.ListPending(ctx, company.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, headTasks, 1)
	require.Equal(t, exp.ID, headTasks[0].Expense.ID)

	blocked, err := env.gateway.ListPending(ctx, company.ID, second.ID)
	require.NoError(t, err)
	require.Empty(t, blocked)
}

func TestGateway_ListPendingEvaluatesEachChainIndependently(t *testing.T) {
	ctx := context.Background()
	env := newGatewayEnv(t, "gw_pending_multi")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	gatekeeper := testutil.CreateUser(t, env.client, company.ID, "gatekeeper")
	reviewer := testutil.CreateUser(t, env.client, company.ID, "bob")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	// Travel goes straight to the reviewer; supplies put them second in a
	// sequence behind the gatekeeper.
	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "travel review",
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions:            []service.ConditionInput{{Kind: "CATEGORY", Values: []string{"TRAVEL"}}},
		Approvers:             []service.ApproverInput{{ApproverID: reviewer.ID, Required: true}},
	})
	require.NoError(t, err)
	_, err = env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "supplies chain",
		SequenceRequired:      true,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions:            []service.ConditionInput{{Kind: "CATEGORY", Values: []string{"SUPPLIES"}}},
		Approvers: []service.ApproverInput{
			{ApproverID: gatekeeper.ID, SequenceOrder: seq(1), Required: true},
			{ApproverID: reviewer.ID, SequenceOrder: seq(2), Required: true},
		},
	})
	require.NoError(t, err)

	travel1 := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 10_000, "TRAVEL")
	travel2 := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 25_000, "TRAVEL")
	supplies := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 5_000, "SUPPLIES")
	for _, exp := range []*ent.Expense{travel1, travel2, supplies} {
		_, err := env.gateway.Submit(ctx, company.ID, employee.ID, exp.ID)
		require.NoError(t, err)
	}

	// The reviewer has three pending rows, but only the travel ones are
	// actionable: the supplies chain is still held by the gatekeeper.
	tasks, err := env.gateway.ListPending(ctx, company.ID, reviewer.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	got := map[string]bool{}
	for _, task := range tasks {
		got[task.Expense.ID] = true
	}
	require.True(t, got[travel1.ID])
	require.True(t, got[travel2.ID])
	require.False(t, got[supplies.ID])
}
