// Package approval implements the workflow gateway: the one entry point for
// expense submission and approval decisions. It drives the transactional use
// cases, then fans out the after-effects — audit records, workflow events,
// background jobs — none of which can roll the committed transition back.
package approval

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	entapproval "expensedesk.io/approvalflow/ent/approval"
	entexpense "expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/domain"
	"expensedesk.io/approvalflow/internal/governance/audit"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/pkg/worker"
	"expensedesk.io/approvalflow/internal/usecase"
)

// JobEnqueuer enqueues background jobs after a workflow transition committed.
type JobEnqueuer interface {
	EnqueueReceiptScan(ctx context.Context, expenseID string) error
}

// Gateway orchestrates the expense approval workflow.
type Gateway struct {
	client      *ent.Client
	submit      *usecase.SubmitExpense
	decide      *usecase.RecordDecision
	auditLogger *audit.Logger
	dispatcher  *domain.EventDispatcher
	pools       *worker.Pools
	enqueuer    JobEnqueuer // Optional: nil disables background jobs
}

// NewGateway creates a new workflow Gateway.
func NewGateway(
	client *ent.Client,
	submit *usecase.SubmitExpense,
	decide *usecase.RecordDecision,
	auditLogger *audit.Logger,
	dispatcher *domain.EventDispatcher,
	pools *worker.Pools,
) *Gateway {
	return &Gateway{
		client:      client,
		submit:      submit,
		decide:      decide,
		auditLogger: auditLogger,
		dispatcher:  dispatcher,
		pools:       pools,
	}
}

// SetJobEnqueuer configures background job enqueueing. Setter so that tests
// and the seed command can run the gateway without a queue.
func (g *Gateway) SetJobEnqueuer(enqueuer JobEnqueuer) {
	g.enqueuer = enqueuer
}

// Submit moves a draft expense into the approval workflow.
func (g *Gateway) Submit(ctx context.Context, companyID, actorID, expenseID string) (*usecase.SubmitResult, error) {
	res, err := g.submit.Submit(ctx, companyID, actorID, expenseID)
	if err != nil {
		return nil, err
	}

	// Audit (best-effort, after commit).
	action := "submitted"
	if res.AutoApproved {
		action = "auto_approved"
	}
	_ = g.auditLogger.LogExpense(ctx, companyID, actorID, action, expenseID, map[string]interface{}{
		"rule_ids":    res.AppliedRuleIDs,
		"task_count":  len(res.Approvals),
		"rule_issues": len(res.RuleIssues),
		"auto":        res.AutoApproved,
	})
	for _, issue := range res.RuleIssues {
		_ = g.auditLogger.LogAction(ctx, companyID, actorID, "rule.evaluation_failed", "approval_rule", issue.RuleID,
			map[string]interface{}{"reason": issue.Reason, "expense_id": expenseID})
	}

	submitterName := g.userName(ctx, actorID)
	if res.AutoApproved {
		g.dispatchDetached(domain.EventExpenseAutoApproved, companyID, actorID, domain.ExpenseDecidedPayload{
			ExpenseID:   expenseID,
			SubmitterID: actorID,
			Status:      string(domain.ExpenseApproved),
		})
	} else {
		g.dispatchDetached(domain.EventExpenseSubmitted, companyID, actorID, domain.ExpenseSubmittedPayload{
			ExpenseID:     expenseID,
			SubmitterID:   actorID,
			SubmitterName: submitterName,
			ApproverIDs:   res.ActionableApprovers,
			RuleIDs:       res.AppliedRuleIDs,
		})
	}

	if g.enqueuer != nil && res.Expense.ReceiptURL != "" {
		if err := g.enqueuer.EnqueueReceiptScan(ctx, expenseID); err != nil {
			logger.Warn("failed to enqueue receipt scan",
				zap.String("expense_id", expenseID),
				zap.Error(err),
			)
		}
	}

	return res, nil
}

// Decide records one approver decision and fans out its after-effects.
func (g *Gateway) Decide(ctx context.Context, companyID, actorID, approvalID string, decision usecase.Decision, comment string) (*usecase.DecisionResult, error) {
	res, err := g.decide.Record(ctx, companyID, actorID, approvalID, decision, comment)
	if err != nil {
		return nil, err
	}

	verb := "approved"
	if decision == usecase.DecisionReject {
		verb = "rejected"
	}
	_ = g.auditLogger.LogDecision(ctx, companyID, actorID, verb, approvalID, res.Expense.ID)

	submitterName := g.userName(ctx, res.Expense.SubmitterID)
	g.dispatchDetached(domain.EventApprovalDecided, companyID, actorID, domain.ApprovalDecidedPayload{
		ApprovalID:         approvalID,
		ExpenseID:          res.Expense.ID,
		ApproverID:         actorID,
		SubmitterID:        res.Expense.SubmitterID,
		SubmitterName:      submitterName,
		Decision:           string(decision),
		Comment:            comment,
		NewlyActionableIDs: res.NewlyActionable,
	})

	switch res.Outcome {
	case domain.ChainApproved:
		_ = g.auditLogger.LogExpense(ctx, companyID, actorID, "approved", res.Expense.ID, nil)
		g.dispatchDetached(domain.EventExpenseApproved, companyID, actorID, domain.ExpenseDecidedPayload{
			ExpenseID:   res.Expense.ID,
			SubmitterID: res.Expense.SubmitterID,
			Status:      string(domain.ExpenseApproved),
			DecidedBy:   actorID,
		})
	case domain.ChainRejected:
		_ = g.auditLogger.LogExpense(ctx, companyID, actorID, "rejected", res.Expense.ID,
			map[string]interface{}{"comment": comment})
		g.dispatchDetached(domain.EventExpenseRejected, companyID, actorID, domain.ExpenseDecidedPayload{
			ExpenseID:     res.Expense.ID,
			SubmitterID:   res.Expense.SubmitterID,
			Status:        string(domain.ExpenseRejected),
			DecidedBy:     actorID,
			DecidedByName: g.userName(ctx, actorID),
			Comment:       comment,
		})
	}

	return res, nil
}

// PendingTask is one actionable approval task with its expense context.
type PendingTask struct {
	Approval *ent.Approval
	Expense  *ent.Expense
}

// ListPending returns the approver's actionable tasks: PENDING records whose
// sequence position allows a decision right now.
func (g *Gateway) ListPending(ctx context.Context, companyID, approverID string) ([]PendingTask, error) {
	rows, err := g.client.Approval.Query().
		Where(entapproval.ApproverID(approverID), entapproval.StatusEQ(entapproval.StatusPENDING)).
		Order(ent.Asc(entapproval.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending approvals: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	expenseIDs := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ExpenseID]; !ok {
			seen[row.ExpenseID] = struct{}{}
			expenseIDs = append(expenseIDs, row.ExpenseID)
		}
	}

	expenses, err := g.client.Expense.Query().
		Where(entexpense.IDIn(expenseIDs...), entexpense.CompanyID(companyID),
			entexpense.StatusEQ(entexpense.StatusPENDING_APPROVAL)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query expenses of pending approvals: %w", err)
	}
	expenseByID := make(map[string]*ent.Expense, len(expenses))
	for _, e := range expenses {
		expenseByID[e.ID] = e
	}

	// One query for every chain involved, not one per pending row.
	chainRows, err := g.client.Approval.Query().
		Where(entapproval.ExpenseIDIn(expenseIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chains of pending approvals: %w", err)
	}
	chainByExpense := make(map[string][]domain.TaskState, len(expenseIDs))
	for _, row := range chainRows {
		chainByExpense[row.ExpenseID] = append(chainByExpense[row.ExpenseID], taskState(row))
	}

	var out []PendingTask
	for _, row := range rows {
		exp, ok := expenseByID[row.ExpenseID]
		if !ok {
			continue
		}
		actionable, err := domain.Actionable(chainByExpense[row.ExpenseID], row.ID)
		if err != nil || !actionable {
			continue
		}
		out = append(out, PendingTask{Approval: row, Expense: exp})
	}
	return out, nil
}

// ChainView is the full chain of one expense with per-lane satisfaction.
type ChainView struct {
	Expense *ent.Expense
	Tasks   []*ent.Approval
	Lanes   map[string]domain.RuleOutcome
	Outcome domain.ChainOutcome
}

// GetChain returns the approval chain of an expense for inspection.
func (g *Gateway) GetChain(ctx context.Context, companyID, expenseID string) (*ChainView, error) {
	exp, err := g.client.Expense.Query().
		Where(entexpense.ID(expenseID), entexpense.CompanyID(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeExpenseNotFound, "expense not found")
		}
		return nil, fmt.Errorf("query expense %s: %w", expenseID, err)
	}

	tasks, err := g.client.Approval.Query().
		Where(entapproval.ExpenseID(expenseID)).
		Order(ent.Asc(entapproval.FieldChainKey), ent.Asc(entapproval.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain of expense %s: %w", expenseID, err)
	}

	states := make([]domain.TaskState, 0, len(tasks))
	for _, t := range tasks {
		states = append(states, taskState(t))
	}

	return &ChainView{
		Expense: exp,
		Tasks:   tasks,
		Lanes:   domain.LaneOutcomes(states),
		Outcome: domain.EvaluateChain(states),
	}, nil
}

func taskState(a *ent.Approval) domain.TaskState {
	mode := domain.ChainMode(domain.Parallel{})
	if a.IsSequential && a.SequenceOrder != nil {
		mode = domain.Sequential{Order: *a.SequenceOrder}
	}
	return domain.TaskState{
		ID:             a.ID,
		ChainKey:       a.ChainKey,
		ApproverID:     a.ApproverID,
		Status:         domain.ApprovalStatus(a.Status),
		Mode:           mode,
		Required:       a.IsRequired,
		TotalApprovers: a.RuleTotalApprovers,
		MinPercentage:  a.RuleMinPercentage,
	}
}

// dispatchDetached hands a workflow event to the dispatcher on the
// notification pool. Delivery is decoupled from the request so an aborted
// HTTP call cannot cancel notifications for a committed transition.
func (g *Gateway) dispatchDetached(eventType domain.EventType, companyID, actorID string, payload interface{ ToJSON() ([]byte, error) }) {
	raw, err := payload.ToJSON()
	if err != nil {
		logger.Error("failed to encode event payload",
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
		return
	}

	event := &domain.Event{
		Type:       eventType,
		CompanyID:  companyID,
		ActorID:    actorID,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}

	if g.pools == nil {
		_ = g.dispatcher.Dispatch(context.Background(), event)
		return
	}
	if err := g.pools.SubmitDetached("notification", func(ctx context.Context) {
		_ = g.dispatcher.Dispatch(ctx, event)
	}); err != nil {
		logger.Error("failed to submit event dispatch",
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
	}
}

// userName resolves a display name, falling back to the ID.
func (g *Gateway) userName(ctx context.Context, userID string) string {
	u, err := g.client.User.Query().Where(user.ID(userID)).Only(ctx)
	if err != nil {
		return userID
	}
	return u.Name
}
