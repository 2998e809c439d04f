package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// Triggers encapsulates notification trigger logic for the expense workflow.
// Trigger points:
//  1. APPROVAL_PENDING — notify approvers whose tasks just became actionable
//     (on submission, and after each decision that unblocks a sequence step)
//  2. EXPENSE_APPROVED / EXPENSE_REJECTED / EXPENSE_AUTO_APPROVED — notify the
//     submitter exactly once, on the terminal transition
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// OnApproversActionable fires when approval tasks become actionable, either
// right after submission or after a decision unblocked the next sequence step.
func (t *Triggers) OnApproversActionable(ctx context.Context, expenseID, submitterName string, approverIDs []string) {
	if len(approverIDs) == 0 {
		return
	}

	params := Params{
		Type:         TypeApprovalPending,
		Title:        "Expense awaiting your approval",
		Message:      fmt.Sprintf("An expense submitted by %s needs your decision", submitterName),
		ResourceType: "expense",
		ResourceID:   expenseID,
	}

	if err := t.sender.SendToMany(ctx, approverIDs, params); err != nil {
		// Notification writes must not be dropped silently; failures must be
		// observable even though they never abort the workflow.
		logger.Error("failed to send APPROVAL_PENDING notifications",
			zap.String("expense_id", expenseID),
			zap.Int("approver_count", len(approverIDs)),
			zap.Error(err),
		)
	}
}

// OnExpenseApproved fires when a chain completes successfully.
func (t *Triggers) OnExpenseApproved(ctx context.Context, expenseID, submitterID string) {
	params := Params{
		RecipientID:  submitterID,
		Type:         TypeExpenseApproved,
		Title:        "Your expense has been approved",
		Message:      "All required approvals were given",
		ResourceType: "expense",
		ResourceID:   expenseID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send EXPENSE_APPROVED notification",
			zap.String("expense_id", expenseID),
			zap.String("submitter", submitterID),
			zap.Error(err),
		)
	}
}

// OnExpenseRejected fires when an approver rejection closes the chain.
func (t *Triggers) OnExpenseRejected(ctx context.Context, expenseID, submitterID, approverName, reason string) {
	msg := fmt.Sprintf("Your expense was rejected by %s", approverName)
	if reason != "" {
		msg += fmt.Sprintf(": %s", reason)
	}

	params := Params{
		RecipientID:  submitterID,
		Type:         TypeExpenseRejected,
		Title:        "Your expense has been rejected",
		Message:      msg,
		ResourceType: "expense",
		ResourceID:   expenseID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send EXPENSE_REJECTED notification",
			zap.String("expense_id", expenseID),
			zap.String("submitter", submitterID),
			zap.Error(err),
		)
	}
}

// OnExpenseAutoApproved fires when a submission matched no rule and was
// approved without a chain.
func (t *Triggers) OnExpenseAutoApproved(ctx context.Context, expenseID, submitterID string) {
	params := Params{
		RecipientID:  submitterID,
		Type:         TypeExpenseAutoApproved,
		Title:        "Your expense was approved automatically",
		Message:      "No approval rule applied to this expense",
		ResourceType: "expense",
		ResourceID:   expenseID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send EXPENSE_AUTO_APPROVED notification",
			zap.String("expense_id", expenseID),
			zap.String("submitter", submitterID),
			zap.Error(err),
		)
	}
}
