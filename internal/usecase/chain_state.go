// Package usecase implements the transactional write paths of the workflow:
// expense submission (chain construction) and decision recording. Each write
// runs in a single Ent transaction holding a row lock on the expense, so two
// concurrent decisions on the same chain serialize instead of double-counting.
package usecase

import (
	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/domain"
)

// toTaskState maps a persisted approval row to its decision-logic view.
func toTaskState(a *ent.Approval) domain.TaskState {
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

func toTaskStates(rows []*ent.Approval) []domain.TaskState {
	out := make([]domain.TaskState, 0, len(rows))
	for _, a := range rows {
		out = append(out, toTaskState(a))
	}
	return out
}

// actionableApprovers returns the approver IDs of PENDING tasks that may be
// decided right now, deduplicated in chain order.
func actionableApprovers(chain []domain.TaskState) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range chain {
		if t.Status != domain.ApprovalPending {
			continue
		}
		ok, err := domain.Actionable(chain, t.ID)
		if err != nil || !ok {
			continue
		}
		if _, dup := seen[t.ApproverID]; dup {
			continue
		}
		seen[t.ApproverID] = struct{}{}
		out = append(out, t.ApproverID)
	}
	return out
}

// newlyActionable returns approvers actionable in after but not in before.
func newlyActionable(before, after []string) []string {
	prev := make(map[string]struct{}, len(before))
	for _, id := range before {
		prev[id] = struct{}{}
	}
	var out []string
	for _, id := range after {
		if _, ok := prev[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
