package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/usecase"
)

// DecideRequest is the body of PUT /approvals/:approval_id.
type DecideRequest struct {
	Decision string `json:"decision" binding:"required"`
	Comment  string `json:"comment"`
}

// DecisionResponse is the body of a recorded decision.
type DecisionResponse struct {
	Approval        ApprovalResponse `json:"approval"`
	Expense         ExpenseResponse  `json:"expense"`
	Outcome         string           `json:"outcome"`
	NewlyActionable []string         `json:"newly_actionable,omitempty"`
}

// DecideApproval handles PUT /approvals/:approval_id — an approver's verdict
// on one task.
func (s *Server) DecideApproval(c *gin.Context) {
	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	decision := usecase.Decision(req.Decision)
	if decision != usecase.DecisionApprove && decision != usecase.DecisionReject {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "decision must be APPROVE or REJECT"))
		return
	}

	res, err := s.gateway.Decide(c.Request.Context(), companyFromCtx(c), actorFromCtx(c), c.Param("approval_id"), decision, req.Comment)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Approval:        approvalToAPI(res.Approval),
		Expense:         expenseToAPI(res.Expense),
		Outcome:         string(res.Outcome),
		NewlyActionable: res.NewlyActionable,
	})
}

// PendingTaskResponse is one actionable task in GET /approvals/pending.
type PendingTaskResponse struct {
	Approval ApprovalResponse `json:"approval"`
	Expense  ExpenseResponse  `json:"expense"`
}

// PendingTaskList is the body of GET /approvals/pending.
type PendingTaskList struct {
	Items []PendingTaskResponse `json:"items"`
}

// ListPendingApprovals handles GET /approvals/pending — the caller's
// actionable tasks, oldest first.
func (s *Server) ListPendingApprovals(c *gin.Context) {
	tasks, err := s.gateway.ListPending(c.Request.Context(), companyFromCtx(c), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]PendingTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, PendingTaskResponse{
			Approval: approvalToAPI(t.Approval),
			Expense:  expenseToAPI(t.Expense),
		})
	}
	c.JSON(http.StatusOK, PendingTaskList{Items: items})
}

// ApprovalList is the body of GET /expenses/:expense_id/approvals.
type ApprovalList struct {
	Items []ApprovalResponse `json:"items"`
}

// ListExpenseApprovals handles GET /expenses/:expense_id/approvals — the raw
// task list of an expense, without the lane evaluation of the chain endpoint.
func (s *Server) ListExpenseApprovals(c *gin.Context) {
	expenseID := c.Param("expense_id")

	if _, err := s.visibleExpense(c, expenseID); err != nil {
		_ = c.Error(err)
		return
	}

	view, err := s.gateway.GetChain(c.Request.Context(), companyFromCtx(c), expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ApprovalList{Items: approvalsToAPI(view.Tasks)})
}

// ChainResponse is the body of GET /expenses/:expense_id/chain.
type ChainResponse struct {
	Expense ExpenseResponse    `json:"expense"`
	Tasks   []ApprovalResponse `json:"tasks"`
	Lanes   map[string]string  `json:"lanes"`
	Outcome string             `json:"outcome"`
}

// GetExpenseChain handles GET /expenses/:expense_id/chain — the full approval
// chain of an expense with per-lane satisfaction.
func (s *Server) GetExpenseChain(c *gin.Context) {
	expenseID := c.Param("expense_id")

	// Visibility follows the expense itself.
	if _, err := s.visibleExpense(c, expenseID); err != nil {
		_ = c.Error(err)
		return
	}

	view, err := s.gateway.GetChain(c.Request.Context(), companyFromCtx(c), expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	lanes := make(map[string]string, len(view.Lanes))
	for key, outcome := range view.Lanes {
		lanes[key] = string(outcome)
	}

	c.JSON(http.StatusOK, ChainResponse{
		Expense: expenseToAPI(view.Expense),
		Tasks:   approvalsToAPI(view.Tasks),
		Lanes:   lanes,
		Outcome: string(view.Outcome),
	})
}
