package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/approval"
	"expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/internal/domain"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// Decision is an approver's verdict on a single approval task.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// RecordDecision applies one approver decision to a chain: validates that the
// task is actionable by the actor, records the verdict, re-evaluates the
// chain, and finalizes the expense when the chain reached a terminal outcome.
// Everything happens under a row lock on the expense, so two approvers
// deciding at once serialize and the second sees the first's record.
type RecordDecision struct {
	client *ent.Client
}

// NewRecordDecision creates a new RecordDecision use case.
func NewRecordDecision(client *ent.Client) *RecordDecision {
	return &RecordDecision{client: client}
}

// DecisionResult is the outcome of recording one decision.
type DecisionResult struct {
	Approval *ent.Approval
	Expense  *ent.Expense

	// Outcome is the chain state after this decision.
	Outcome domain.ChainOutcome

	// NewlyActionable are approvers whose sequential tasks became actionable
	// because of this decision.
	NewlyActionable []string
}

// Record applies the decision of actorID on the given approval task.
func (r *RecordDecision) Record(ctx context.Context, companyID, actorID, approvalID string, decision Decision, comment string) (*DecisionResult, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			fmt.Sprintf("unknown decision %q", decision))
	}

	// Pre-read outside the lock to learn which expense row to lock.
	task, err := r.client.Approval.Get(ctx, approvalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeApprovalNotFound, "approval not found")
		}
		return nil, fmt.Errorf("query approval %s: %w", approvalID, err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin decision tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Expense row first, always: every chain writer takes this lock before
	// touching approval rows, which rules out lock-order deadlocks.
	exp, err := tx.Expense.Query().
		Where(expense.ID(task.ExpenseID), expense.CompanyID(companyID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeApprovalNotFound, "approval not found")
		}
		return nil, fmt.Errorf("lock expense %s: %w", task.ExpenseID, err)
	}
	if exp.Status != expense.StatusPENDING_APPROVAL {
		return nil, apperrors.ErrInvalidStateTransitionf(string(exp.Status), "decide")
	}

	// Re-read the whole chain under the lock.
	chainRows, err := tx.Approval.Query().
		Where(approval.ExpenseID(exp.ID)).
		Order(ent.Asc(approval.FieldChainKey), ent.Asc(approval.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain of expense %s: %w", exp.ID, err)
	}

	var current *ent.Approval
	for _, row := range chainRows {
		if row.ID == approvalID {
			current = row
			break
		}
	}
	if current == nil {
		return nil, apperrors.NotFound(apperrors.CodeApprovalNotFound, "approval not found")
	}
	if current.ApproverID != actorID {
		return nil, apperrors.Forbidden(apperrors.CodeForbidden, "only the assigned approver may decide this task")
	}
	if current.Status != approval.StatusPENDING {
		return nil, apperrors.ErrAlreadyProcessedf(approvalID, string(current.Status))
	}

	chainBefore := toTaskStates(chainRows)
	actionable, err := domain.Actionable(chainBefore, approvalID)
	if err != nil {
		return nil, fmt.Errorf("check actionability of %s: %w", approvalID, err)
	}
	if !actionable {
		return nil, apperrors.ErrOutOfSequencef(approvalID)
	}
	actionableBefore := actionableApprovers(chainBefore)

	now := time.Now().UTC()
	newStatus := approval.StatusAPPROVED
	if decision == DecisionReject {
		newStatus = approval.StatusREJECTED
	}
	updatedTask, err := tx.Approval.UpdateOneID(approvalID).
		SetStatus(newStatus).
		SetComment(comment).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record decision on %s: %w", approvalID, err)
	}

	// Rebuild the chain view with the fresh record and fold the outcome.
	for i, row := range chainRows {
		if row.ID == approvalID {
			chainRows[i] = updatedTask
		}
	}
	chainAfter := toTaskStates(chainRows)
	outcome := domain.EvaluateChain(chainAfter)

	updatedExpense := exp
	if outcome != domain.ChainPending {
		updatedExpense, err = r.finalize(ctx, tx, exp, chainRows, outcome, now)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit decision tx: %w", err)
	}

	result := &DecisionResult{
		Approval: updatedTask,
		Expense:  updatedExpense,
		Outcome:  outcome,
	}
	if outcome == domain.ChainPending {
		result.NewlyActionable = newlyActionable(actionableBefore, actionableApprovers(chainAfter))
	}

	logger.Info("approval decision recorded",
		zap.String("approval_id", approvalID),
		zap.String("expense_id", exp.ID),
		zap.String("approver_id", actorID),
		zap.String("decision", string(decision)),
		zap.String("chain_outcome", string(outcome)),
	)
	return result, nil
}

// finalize moves the expense to its terminal status and marks every still
// PENDING task SKIPPED. A rejection moots the rest of the chain; an approval
// below-100% lane can likewise leave tasks that no longer need a verdict.
func (r *RecordDecision) finalize(ctx context.Context, tx *ent.Tx, exp *ent.Expense, chainRows []*ent.Approval, outcome domain.ChainOutcome, now time.Time) (*ent.Expense, error) {
	status := expense.StatusAPPROVED
	if outcome == domain.ChainRejected {
		status = expense.StatusREJECTED
	}

	var pendingIDs []string
	for _, row := range chainRows {
		if row.Status == approval.StatusPENDING {
			pendingIDs = append(pendingIDs, row.ID)
		}
	}
	if len(pendingIDs) > 0 {
		if _, err := tx.Approval.Update().
			Where(approval.IDIn(pendingIDs...)).
			SetStatus(approval.StatusSKIPPED).
			SetProcessedAt(now).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("skip remaining tasks of expense %s: %w", exp.ID, err)
		}
	}

	updated, err := exp.Update().
		SetStatus(status).
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalize expense %s: %w", exp.ID, err)
	}
	return updated, nil
}
