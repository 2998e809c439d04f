// Package handlers — response DTOs and Ent → API conversion helpers.
package handlers

import (
	"time"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/domain"
	"expensedesk.io/approvalflow/internal/service"
)

// defaultPagination normalizes page/perPage from query params (0 = not specified).
func defaultPagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func newPagination(page, perPage, total int) Pagination {
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// ExpenseResponse is the API shape of an expense.
type ExpenseResponse struct {
	ID          string     `json:"id"`
	SubmitterID string     `json:"submitter_id"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	ExpenseDate time.Time  `json:"expense_date"`
	Status      string     `json:"status"`
	ReceiptURL  string     `json:"receipt_url,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func expenseToAPI(e *ent.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		SubmitterID: e.SubmitterID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    e.Category,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		Status:      e.Status.String(),
		ReceiptURL:  e.ReceiptURL,
		SubmittedAt: e.SubmittedAt,
		DecidedAt:   e.DecidedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ApprovalResponse is the API shape of one approval task.
type ApprovalResponse struct {
	ID            string     `json:"id"`
	ExpenseID     string     `json:"expense_id"`
	ApproverID    string     `json:"approver_id"`
	RuleID        string     `json:"rule_id,omitempty"`
	ChainKey      string     `json:"chain_key"`
	Status        string     `json:"status"`
	SequenceOrder *int       `json:"sequence_order,omitempty"`
	IsSequential  bool       `json:"is_sequential"`
	IsRequired    bool       `json:"is_required"`
	Comment       string     `json:"comment,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func approvalToAPI(a *ent.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:            a.ID,
		ExpenseID:     a.ExpenseID,
		ApproverID:    a.ApproverID,
		RuleID:        a.RuleID,
		ChainKey:      a.ChainKey,
		Status:        a.Status.String(),
		SequenceOrder: a.SequenceOrder,
		IsSequential:  a.IsSequential,
		IsRequired:    a.IsRequired,
		Comment:       a.Comment,
		ProcessedAt:   a.ProcessedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func approvalsToAPI(rows []*ent.Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, approvalToAPI(a))
	}
	return out
}

// RuleIssue reports an active rule that was excluded from evaluation.
type RuleIssue struct {
	RuleID string `json:"rule_id"`
	Reason string `json:"reason"`
}

func ruleIssuesToAPI(issues []*domain.RuleEvaluationError) []RuleIssue {
	out := make([]RuleIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, RuleIssue{RuleID: issue.RuleID, Reason: issue.Reason})
	}
	return out
}

// ConditionResponse is the API shape of one rule condition.
type ConditionResponse struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	MinAmount int64    `json:"min_amount,omitempty"`
	MaxAmount int64    `json:"max_amount,omitempty"`
	Values    []string `json:"values,omitempty"`
}

// RuleApproverResponse is the API shape of one approver assignment.
type RuleApproverResponse struct {
	ID            string `json:"id"`
	ApproverID    string `json:"approver_id"`
	SequenceOrder *int   `json:"sequence_order,omitempty"`
	Required      bool   `json:"required"`
}

// RuleResponse is the API shape of an approval rule.
type RuleResponse struct {
	ID                      string                 `json:"id"`
	Name                    string                 `json:"name"`
	Description             string                 `json:"description,omitempty"`
	Priority                int                    `json:"priority"`
	ManagerApprovalRequired bool                   `json:"is_manager_approval_required"`
	SequenceRequired        bool                   `json:"is_sequence_required"`
	MinApprovalPercentage   int                    `json:"min_approval_percentage"`
	Active                  bool                   `json:"active"`
	CreatedBy               string                 `json:"created_by"`
	Conditions              []ConditionResponse    `json:"conditions"`
	Approvers               []RuleApproverResponse `json:"approvers"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
}

func ruleToAPI(v *service.RuleView) RuleResponse {
	conditions := make([]ConditionResponse, 0, len(v.Conditions))
	for _, c := range v.Conditions {
		conditions = append(conditions, ConditionResponse{
			ID:        c.ID,
			Kind:      c.Kind.String(),
			MinAmount: c.MinAmount,
			MaxAmount: c.MaxAmount,
			Values:    c.Values,
		})
	}
	approvers := make([]RuleApproverResponse, 0, len(v.Approvers))
	for _, a := range v.Approvers {
		approvers = append(approvers, RuleApproverResponse{
			ID:            a.ID,
			ApproverID:    a.ApproverID,
			SequenceOrder: a.SequenceOrder,
			Required:      a.IsRequired,
		})
	}
	return RuleResponse{
		ID:                      v.Rule.ID,
		Name:                    v.Rule.Name,
		Description:             v.Rule.Description,
		Priority:                v.Rule.Priority,
		ManagerApprovalRequired: v.Rule.IsManagerApprovalRequired,
		SequenceRequired:        v.Rule.IsSequenceRequired,
		MinApprovalPercentage:   v.Rule.MinApprovalPercentage,
		Active:                  v.Rule.Active,
		CreatedBy:               v.Rule.CreatedBy,
		Conditions:              conditions,
		Approvers:               approvers,
		CreatedAt:               v.Rule.CreatedAt,
		UpdatedAt:               v.Rule.UpdatedAt,
	}
}

// NotificationResponse is the API shape of an inbox entry.
type NotificationResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

func notificationToAPI(n *ent.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		CreatedAt:    n.CreatedAt,
	}
}
