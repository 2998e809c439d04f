package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"expensedesk.io/approvalflow/ent"
	entapproval "expensedesk.io/approvalflow/ent/approval"
	entexpense "expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/domain"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
	"expensedesk.io/approvalflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seq(n int) *int { return &n }

type workflowEnv struct {
	client    *ent.Client
	directory *service.Directory
	rules     *service.RuleService
	submit    *SubmitExpense
	decide    *RecordDecision
}

func newWorkflowEnv(t *testing.T, prefix string) *workflowEnv {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	directory := service.NewDirectory(client)
	rules := service.NewRuleService(client, directory)
	return &workflowEnv{
		client:    client,
		directory: directory,
		rules:     rules,
		submit:    NewSubmitExpense(client, directory, rules),
		decide:    NewRecordDecision(client),
	}
}

func TestSubmit_AutoApprovesWithoutApplicableRules(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "submit_auto_approve")

	company := testutil.CreateCompany(t, env.client, "acme")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 4_500, "MEALS")

	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.True(t, res.AutoApproved)
	require.Empty(t, res.Approvals)
	require.Equal(t, entexpense.StatusAPPROVED, res.Expense.Status)
	require.NotNil(t, res.Expense.SubmittedAt)
	require.NotNil(t, res.Expense.DecidedAt)
}

func TestSubmit_BuildsSequentialChainWithManagerFirst(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "submit_manager_chain")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	manager := testutil.CreateUser(t, env.client, company.ID, "mgr", testutil.WithRole(user.RoleMANAGER))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice", testutil.WithManager(manager.ID))
	a1 := testutil.CreateUser(t, env.client, company.ID, "finance1")
	a2 := testutil.CreateUser(t, env.client, company.ID, "finance2")

	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                    "large expenses",
		ManagerApprovalRequired: true,
		SequenceRequired:        true,
		MinApprovalPercentage:   100,
		Active:                  true,
		Conditions: []service.ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 50_000},
		},
		Approvers: []service.ApproverInput{
			{ApproverID: a1.ID, SequenceOrder: seq(1), Required: true},
			{ApproverID: a2.ID, SequenceOrder: seq(2), Required: true},
		},
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 75_000, "TRAVEL")

	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.False(t, res.AutoApproved)
	require.Equal(t, entexpense.StatusPENDING_APPROVAL, res.Expense.Status)
	require.Len(t, res.Approvals, 3)

	// Manager task sits ahead of the rule's own approvers.
	first := res.Approvals[0]
	require.Equal(t, manager.ID, first.ApproverID)
	require.Empty(t, first.RuleID)
	require.True(t, first.IsSequential)
	require.NotNil(t, first.SequenceOrder)
	require.Equal(t, 0, *first.SequenceOrder)

	// The inserted manager counts toward the lane total.
	for _, a := range res.Approvals {
		require.Equal(t, 3, a.RuleTotalApprovers)
		require.Equal(t, 100, a.RuleMinPercentage)
	}

	// Only the sequence head is actionable right after submission.
	require.Equal(t, []string{manager.ID}, res.ActionableApprovers)
}

func TestSubmit_RejectsNonOwnerAndNonDraft(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "submit_guards")

	company := testutil.CreateCompany(t, env.client, "acme")
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	other := testutil.CreateUser(t, env.client, company.ID, "bob")
	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 1_000, "MEALS")

	_, err := env.submit.Submit(ctx, company.ID, other.ID, exp.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err) // auto-approved, now terminal

	_, err = env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStateTransition, appErr.Code)
}

func TestSubmit_ChainBuildFailureLeavesPendingUnchained(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "submit_build_failure")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	approver := testutil.CreateUser(t, env.client, company.ID, "bob")

	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "single approver",
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions:            []service.ConditionInput{{Kind: "AMOUNT_THRESHOLD", MinAmount: 1}},
		Approvers:             []service.ApproverInput{{ApproverID: approver.ID, Required: true}},
	})
	require.NoError(t, err)

	// The approver leaves the company between rule creation and submission.
	env.client.User.UpdateOneID(approver.ID).SetActive(false).SaveX(ctx)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 8_000, "MEALS")
	_, err = env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidApprover, appErr.Code)

	// The expense left DRAFT anyway: pending, with no chain built.
	reloaded := env.client.Expense.GetX(ctx, exp.ID)
	require.Equal(t, entexpense.StatusPENDING_APPROVAL, reloaded.Status)
	require.NotNil(t, reloaded.SubmittedAt)
	require.Zero(t, env.client.Approval.Query().Where(entapproval.ExpenseID(exp.ID)).CountX(ctx))

	// Re-submitting before the fix reports the same problem, no state change.
	_, err = env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidApprover, appErr.Code)

	// Reactivating the approver lets a re-submit rebuild the chain.
	env.client.User.UpdateOneID(approver.ID).SetActive(true).SaveX(ctx)
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 1)
	require.Equal(t, entexpense.StatusPENDING_APPROVAL, res.Expense.Status)

	// The rebuilt chain is a real one: a further submit is a conflict.
	_, err = env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStateTransition, appErr.Code)
}

func TestRecord_SequentialGatingAndCompletion(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "decide_sequential")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	a1 := testutil.CreateUser(t, env.client, company.ID, "first")
	a2 := testutil.CreateUser(t, env.client, company.ID, "second")

	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "two step",
		SequenceRequired:      true,
		MinApprovalPercentage: 100,
		Active:                true,
		Approvers: []service.ApproverInput{
			{ApproverID: a1.ID, SequenceOrder: seq(1), Required: true},
			{ApproverID: a2.ID, SequenceOrder: seq(2), Required: true},
		},
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 9_000, "MEALS")
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 2)

	taskOf := func(approverID string) *ent.Approval {
		for _, a := range res.Approvals {
			if a.ApproverID == approverID {
				return a
			}
		}
		t.Fatalf("no task for approver %s", approverID)
		return nil
	}

	// Second approver acting early is out of sequence.
	_, err = env.decide.Record(ctx, company.ID, a2.ID, taskOf(a2.ID).ID, DecisionApprove, "")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeOutOfSequence, appErr.Code)

	// First approver approves; the second becomes actionable.
	dec, err := env.decide.Record(ctx, company.ID, a1.ID, taskOf(a1.ID).ID, DecisionApprove, "fine")
	require.NoError(t, err)
	require.Equal(t, domain.ChainPending, dec.Outcome)
	require.Equal(t, []string{a2.ID}, dec.NewlyActionable)

	// A repeated decision on the same task is a conflict.
	_, err = env.decide.Record(ctx, company.ID, a1.ID, taskOf(a1.ID).ID, DecisionApprove, "")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeAlreadyProcessed, appErr.Code)

	// Final approval completes the chain and the expense.
	dec, err = env.decide.Record(ctx, company.ID, a2.ID, taskOf(a2.ID).ID, DecisionApprove, "")
	require.NoError(t, err)
	require.Equal(t, domain.ChainApproved, dec.Outcome)
	require.Equal(t, entexpense.StatusAPPROVED, dec.Expense.Status)
	require.NotNil(t, dec.Expense.DecidedAt)
}

func TestRecord_RejectShortCircuitsChain(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "decide_reject")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	a1 := testutil.CreateUser(t, env.client, company.ID, "first")
	a2 := testutil.CreateUser(t, env.client, company.ID, "second")

	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "everyone must agree",
		MinApprovalPercentage: 100,
		Active:                true,
		Approvers: []service.ApproverInput{
			{ApproverID: a1.ID, Required: true},
			{ApproverID: a2.ID, Required: true},
		},
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 20_000, "SOFTWARE")
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 2)
	require.ElementsMatch(t, []string{a1.ID, a2.ID}, res.ActionableApprovers)

	var rejectTask, otherTask *ent.Approval
	for _, a := range res.Approvals {
		if a.ApproverID == a1.ID {
			rejectTask = a
		} else {
			otherTask = a
		}
	}

	dec, err := env.decide.Record(ctx, company.ID, a1.ID, rejectTask.ID, DecisionReject, "missing receipt")
	require.NoError(t, err)
	require.Equal(t, domain.ChainRejected, dec.Outcome)
	require.Equal(t, entexpense.StatusREJECTED, dec.Expense.Status)

	// The untouched task is mooted, not left dangling.
	skipped, err := env.client.Approval.Get(ctx, otherTask.ID)
	require.NoError(t, err)
	require.Equal(t, entapproval.StatusSKIPPED, skipped.Status)

	// Decisions after the chain closed are conflicts.
	_, err = env.decide.Record(ctx, company.ID, a2.ID, otherTask.ID, DecisionApprove, "")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStateTransition, appErr.Code)
}

func TestRecord_PercentageThresholdApprovesEarly(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "decide_percentage")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")

	approvers := make([]*ent.User, 0, 4)
	for _, n := range []string{"p1", "p2", "p3", "p4"} {
		approvers = append(approvers, testutil.CreateUser(t, env.client, company.ID, n))
	}

	// None of the committee is individually required, so the percentage
	// threshold alone decides.
	inputs := make([]service.ApproverInput, 0, len(approvers))
	for _, a := range approvers {
		inputs = append(inputs, service.ApproverInput{ApproverID: a.ID})
	}
	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "half the committee",
		MinApprovalPercentage: 50,
		Active:                true,
		Approvers:             inputs,
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 120_000, "EQUIPMENT")
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 4)

	taskOf := func(approverID string) string {
		for _, a := range res.Approvals {
			if a.ApproverID == approverID {
				return a.ID
			}
		}
		t.Fatalf("no task for approver %s", approverID)
		return ""
	}

	dec, err := env.decide.Record(ctx, company.ID, approvers[0].ID, taskOf(approvers[0].ID), DecisionApprove, "")
	require.NoError(t, err)
	require.Equal(t, domain.ChainPending, dec.Outcome)

	// Second approval reaches exactly 50%: chain approves, the rest is skipped.
	dec, err = env.decide.Record(ctx, company.ID, approvers[1].ID, taskOf(approvers[1].ID), DecisionApprove, "")
	require.NoError(t, err)
	require.Equal(t, domain.ChainApproved, dec.Outcome)
	require.Equal(t, entexpense.StatusAPPROVED, dec.Expense.Status)

	remaining, err := env.client.Approval.Query().
		Where(entapproval.ExpenseID(exp.ID), entapproval.StatusEQ(entapproval.StatusSKIPPED)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, remaining)
}

func TestRecord_ConcurrentDecisionsSerialize(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "decide_concurrent")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	p1 := testutil.CreateUser(t, env.client, company.ID, "p1")
	p2 := testutil.CreateUser(t, env.client, company.ID, "p2")

	// Either of the two suffices (50% of 2), so both racing to approve is the
	// worst case: without serialization both would finalize.
	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "either of two",
		MinApprovalPercentage: 50,
		Active:                true,
		Approvers: []service.ApproverInput{
			{ApproverID: p1.ID},
			{ApproverID: p2.ID},
		},
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 40_000, "TRAVEL")
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 2)

	// The expense row lock serializes the two: whoever commits first reaches
	// 50% and finalizes, the other finds the expense terminal under the lock.
	type outcome struct {
		res *DecisionResult
		err error
	}
	results := make([]outcome, len(res.Approvals))
	var wg sync.WaitGroup
	for i, task := range res.Approvals {
		wg.Add(1)
		go func(i int, task *ent.Approval) {
			defer wg.Done()
			r, err := env.decide.Record(ctx, company.ID, task.ApproverID, task.ID, DecisionApprove, "")
			results[i] = outcome{res: r, err: err}
		}(i, task)
	}
	wg.Wait()

	var wins, conflicts int
	for _, r := range results {
		if r.err == nil {
			wins++
			require.Equal(t, domain.ChainApproved, r.res.Outcome)
			require.Equal(t, entexpense.StatusAPPROVED, r.res.Expense.Status)
			continue
		}
		appErr, ok := apperrors.IsAppError(r.err)
		require.True(t, ok, "loser must fail with a workflow conflict, got %v", r.err)
		require.Contains(t,
			[]string{apperrors.CodeInvalidStateTransition, apperrors.CodeAlreadyProcessed},
			appErr.Code)
		conflicts++
	}
	require.Equal(t, 1, wins, "exactly one decision may finalize the expense")
	require.Equal(t, 1, conflicts)

	approved := env.client.Approval.Query().
		Where(entapproval.ExpenseID(exp.ID), entapproval.StatusEQ(entapproval.StatusAPPROVED)).
		CountX(ctx)
	skipped := env.client.Approval.Query().
		Where(entapproval.ExpenseID(exp.ID), entapproval.StatusEQ(entapproval.StatusSKIPPED)).
		CountX(ctx)
	require.Equal(t, 1, approved)
	require.Equal(t, 1, skipped)

	final := env.client.Expense.GetX(ctx, exp.ID)
	require.Equal(t, entexpense.StatusAPPROVED, final.Status)
	require.NotNil(t, final.DecidedAt)
}

func TestRecord_OnlyAssignedApproverMayDecide(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t, "decide_wrong_actor")

	company := testutil.CreateCompany(t, env.client, "acme")
	admin := testutil.CreateUser(t, env.client, company.ID, "admin", testutil.WithRole(user.RoleADMIN))
	employee := testutil.CreateUser(t, env.client, company.ID, "alice")
	approver := testutil.CreateUser(t, env.client, company.ID, "bob")
	intruder := testutil.CreateUser(t, env.client, company.ID, "mallory")

	_, err := env.rules.CreateRule(ctx, company.ID, admin.ID, service.RuleInput{
		Name:                  "single approver",
		MinApprovalPercentage: 100,
		Active:                true,
		Approvers:             []service.ApproverInput{{ApproverID: approver.ID, Required: true}},
	})
	require.NoError(t, err)

	exp := testutil.CreateDraftExpense(t, env.client, company.ID, employee.ID, 3_000, "MEALS")
	res, err := env.submit.Submit(ctx, company.ID, employee.ID, exp.ID)
	require.NoError(t, err)
	require.Len(t, res.Approvals, 1)

	_, err = env.decide.Record(ctx, company.ID, intruder.ID, res.Approvals[0].ID, DecisionApprove, "")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
