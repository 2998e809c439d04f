package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/approval"
	"expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/internal/domain"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
)

// SubmitExpense builds the approval chain for a draft expense and moves it to
// PENDING_APPROVAL, or auto-approves it when no rule applies. The status
// transition and the chain records are written atomically.
type SubmitExpense struct {
	client    *ent.Client
	directory *service.Directory
	rules     *service.RuleService
}

// NewSubmitExpense creates a new SubmitExpense use case.
func NewSubmitExpense(client *ent.Client, directory *service.Directory, rules *service.RuleService) *SubmitExpense {
	return &SubmitExpense{client: client, directory: directory, rules: rules}
}

// SubmitResult is the outcome of a submission.
type SubmitResult struct {
	Expense   *ent.Expense
	Approvals []*ent.Approval

	// AutoApproved is true when no active rule applied.
	AutoApproved bool

	// ActionableApprovers are the approvers whose tasks may be decided
	// immediately after submission (all parallel tasks plus sequential heads).
	ActionableApprovers []string

	// RuleIssues lists active rules that were excluded because their stored
	// conditions could not be evaluated. Non-fatal.
	RuleIssues []*domain.RuleEvaluationError

	// AppliedRuleIDs are the rules the chain was built from, in evaluation order.
	AppliedRuleIDs []string
}

// Submit transitions a DRAFT expense owned by actorID to its post-submission
// state. A chain-build failure (malformed rule, deactivated approver) still
// moves the expense to PENDING_APPROVAL, just without a chain; re-submitting
// in that state retries chain construction.
//
// Reads (submitter attributes, active rules) happen before the transaction;
// the transaction then locks the expense row, re-checks the status under the
// lock, and writes the chain plus the status transition together. A rule or
// directory change racing the read phase yields some consistent snapshot,
// which is all chain construction promises.
func (s *SubmitExpense) Submit(ctx context.Context, companyID, actorID, expenseID string) (*SubmitResult, error) {
	submitter, err := s.directory.ResolveSubmitter(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}

	exp, err := s.client.Expense.Query().
		Where(expense.ID(expenseID), expense.CompanyID(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeExpenseNotFound, "expense not found")
		}
		return nil, fmt.Errorf("query expense %s: %w", expenseID, err)
	}
	if exp.SubmitterID != actorID {
		return nil, apperrors.Forbidden(apperrors.CodeForbidden, "only the owner may submit an expense")
	}

	rules, err := s.rules.LoadActiveRules(ctx, companyID)
	if err != nil {
		return nil, err
	}

	evalView := domain.Expense{
		ID:                  exp.ID,
		CompanyID:           exp.CompanyID,
		SubmitterID:         exp.SubmitterID,
		Amount:              exp.Amount,
		Currency:            exp.Currency,
		Category:            exp.Category,
		ExpenseDate:         exp.ExpenseDate,
		SubmitterRole:       submitter.Role,
		SubmitterDepartment: submitter.Department,
		Status:              domain.ExpenseStatus(exp.Status),
	}

	applicable, issues := domain.EvaluateApplicableRules(evalView, rules)
	for _, issue := range issues {
		logger.Warn("rule excluded from evaluation",
			zap.String("rule_id", issue.RuleID),
			zap.String("expense_id", expenseID),
			zap.String("reason", issue.Reason),
		)
	}

	tasks, planErr := domain.PlanChain(applicable, submitter.ManagerID)
	var buildErr error
	if planErr != nil {
		buildErr = apperrors.Wrap(planErr, apperrors.CodeChainBuildFail,
			"approval chain could not be constructed", http.StatusUnprocessableEntity)
	} else if err := s.validateTaskApprovers(ctx, companyID, tasks); err != nil {
		buildErr = err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Row lock serializes concurrent submits and decisions on this expense.
	locked, err := tx.Expense.Query().
		Where(expense.ID(expenseID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock expense %s: %w", expenseID, err)
	}
	switch locked.Status {
	case expense.StatusDRAFT:
	case expense.StatusPENDING_APPROVAL:
		// A prior submit may have left the expense pending without a chain
		// (chain-build failure). Only that state may rebuild; an expense
		// already carrying a chain never gets a second one.
		chained, err := tx.Approval.Query().
			Where(approval.ExpenseID(expenseID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("query chain of expense %s: %w", expenseID, err)
		}
		if chained {
			return nil, apperrors.ErrInvalidStateTransitionf(string(locked.Status), "submit")
		}
	default:
		return nil, apperrors.ErrInvalidStateTransitionf(string(locked.Status), "submit")
	}

	now := time.Now().UTC()
	if buildErr != nil {
		// The submission still happened: the expense leaves DRAFT and waits,
		// un-chained, until the configuration is fixed and it is re-submitted.
		if locked.Status == expense.StatusDRAFT {
			if _, err := locked.Update().
				SetStatus(expense.StatusPENDING_APPROVAL).
				SetSubmittedAt(now).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("submit expense %s without chain: %w", expenseID, err)
			}
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("commit submit tx: %w", err)
			}
		}
		return nil, buildErr
	}

	var (
		updated   *ent.Expense
		approvals []*ent.Approval
	)
	if len(tasks) == 0 {
		upd := locked.Update().
			SetStatus(expense.StatusAPPROVED).
			SetDecidedAt(now)
		if locked.SubmittedAt == nil {
			upd.SetSubmittedAt(now)
		}
		updated, err = upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("auto-approve expense %s: %w", expenseID, err)
		}
	} else {
		approvals, err = s.createApprovals(ctx, tx, expenseID, tasks)
		if err != nil {
			return nil, err
		}
		upd := locked.Update().
			SetStatus(expense.StatusPENDING_APPROVAL)
		if locked.SubmittedAt == nil {
			upd.SetSubmittedAt(now)
		}
		updated, err = upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("submit expense %s: %w", expenseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit tx: %w", err)
	}

	result := &SubmitResult{
		Expense:      updated,
		Approvals:    approvals,
		AutoApproved: len(tasks) == 0,
		RuleIssues:   issues,
	}
	for _, r := range applicable {
		result.AppliedRuleIDs = append(result.AppliedRuleIDs, r.ID)
	}
	if len(approvals) > 0 {
		result.ActionableApprovers = actionableApprovers(toTaskStates(approvals))
	}

	logger.Info("expense submitted",
		zap.String("expense_id", expenseID),
		zap.String("submitter_id", actorID),
		zap.Int("task_count", len(approvals)),
		zap.Bool("auto_approved", result.AutoApproved),
	)
	return result, nil
}

// validateTaskApprovers rejects chains that reference deactivated or foreign
// approvers. The chain is never silently built smaller than configured.
func (s *SubmitExpense) validateTaskApprovers(ctx context.Context, companyID string, tasks []domain.PlannedTask) error {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ApproverID)
	}
	return s.directory.ValidateApprovers(ctx, companyID, ids, "")
}

func (s *SubmitExpense) createApprovals(ctx context.Context, tx *ent.Tx, expenseID string, tasks []domain.PlannedTask) ([]*ent.Approval, error) {
	builders := make([]*ent.ApprovalCreate, 0, len(tasks))
	for _, t := range tasks {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate approval id: %w", err)
		}
		create := tx.Approval.Create().
			SetID(id.String()).
			SetExpenseID(expenseID).
			SetApproverID(t.ApproverID).
			SetChainKey(t.ChainKey).
			SetIsRequired(t.Required).
			SetRuleTotalApprovers(t.TotalApprovers).
			SetRuleMinPercentage(t.MinPercentage)
		if t.RuleID != "" {
			create.SetRuleID(t.RuleID)
		}
		if seq, ok := t.Mode.(domain.Sequential); ok {
			create.SetIsSequential(true).SetSequenceOrder(seq.Order)
		}
		builders = append(builders, create)
	}

	approvals, err := tx.Approval.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create approval chain for expense %s: %w", expenseID, err)
	}
	return approvals, nil
}
