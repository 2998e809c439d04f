package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	entapproval "expensedesk.io/approvalflow/ent/approval"
	entexpense "expensedesk.io/approvalflow/ent/expense"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// CreateExpenseRequest is the body of POST /expenses.
type CreateExpenseRequest struct {
	Amount      int64     `json:"amount" binding:"required,gt=0"` // Minor currency units
	Currency    string    `json:"currency" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
	ReceiptURL  string    `json:"receipt_url"`
}

// CreateExpense handles POST /expenses. The new expense starts in DRAFT and
// enters the workflow only on submit.
func (s *Server) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Error("failed to generate expense id", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	exp, err := s.client.Expense.Create().
		SetID(id.String()).
		SetCompanyID(companyFromCtx(c)).
		SetSubmitterID(actorFromCtx(c)).
		SetAmount(req.Amount).
		SetCurrency(req.Currency).
		SetCategory(req.Category).
		SetDescription(req.Description).
		SetExpenseDate(req.ExpenseDate).
		SetReceiptURL(req.ReceiptURL).
		Save(c.Request.Context())
	if err != nil {
		logger.Error("failed to create expense", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		if err := s.audit.LogExpense(c.Request.Context(), exp.CompanyID, exp.SubmitterID, "created", exp.ID, nil); err != nil {
			logger.Warn("audit log write failed", zap.Error(err), zap.String("expense_id", exp.ID))
		}
	}

	c.JSON(http.StatusCreated, expenseToAPI(exp))
}

// UpdateExpenseRequest is the body of PUT /expenses/:expense_id. Only DRAFT
// expenses may be edited.
type UpdateExpenseRequest struct {
	Amount      int64     `json:"amount" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
	ReceiptURL  string    `json:"receipt_url"`
}

// UpdateExpense handles PUT /expenses/:expense_id.
func (s *Server) UpdateExpense(c *gin.Context) {
	expenseID := c.Param("expense_id")

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	exp, err := s.ownedExpense(c, expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if exp.Status != entexpense.StatusDRAFT {
		_ = c.Error(apperrors.ErrInvalidStateTransitionf(exp.Status.String(), "edit"))
		return
	}

	updated, err := s.client.Expense.UpdateOneID(expenseID).
		SetAmount(req.Amount).
		SetCurrency(req.Currency).
		SetCategory(req.Category).
		SetDescription(req.Description).
		SetExpenseDate(req.ExpenseDate).
		SetReceiptURL(req.ReceiptURL).
		Save(c.Request.Context())
	if err != nil {
		logger.Error("failed to update expense", zap.Error(err), zap.String("expense_id", expenseID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, expenseToAPI(updated))
}

// DeleteExpense handles DELETE /expenses/:expense_id. Only DRAFT expenses may
// be deleted; anything past submission stays for the audit trail.
func (s *Server) DeleteExpense(c *gin.Context) {
	expenseID := c.Param("expense_id")

	exp, err := s.ownedExpense(c, expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if exp.Status != entexpense.StatusDRAFT {
		_ = c.Error(apperrors.ErrInvalidStateTransitionf(exp.Status.String(), "delete"))
		return
	}

	if err := s.client.Expense.DeleteOneID(expenseID).Exec(c.Request.Context()); err != nil {
		logger.Error("failed to delete expense", zap.Error(err), zap.String("expense_id", expenseID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExpenseList is the body of GET /expenses.
type ExpenseList struct {
	Items      []ExpenseResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// ListExpenses handles GET /expenses. Non-admin callers see their own
// expenses only.
func (s *Server) ListExpenses(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.Expense.Query().
		Where(entexpense.CompanyID(companyFromCtx(c)))

	if c.GetString("role") != "ADMIN" {
		query = query.Where(entexpense.SubmitterID(actorFromCtx(c)))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where(entexpense.StatusEQ(entexpense.Status(status)))
	}
	if category := c.Query("category"); category != "" {
		query = query.Where(entexpense.CategoryEQ(category))
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	expenses, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entexpense.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list expenses", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, expenseToAPI(e))
	}

	c.JSON(http.StatusOK, ExpenseList{
		Items:      items,
		Pagination: newPagination(page, perPage, total),
	})
}

// GetExpense handles GET /expenses/:expense_id.
func (s *Server) GetExpense(c *gin.Context) {
	exp, err := s.visibleExpense(c, c.Param("expense_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, expenseToAPI(exp))
}

// SubmitResponse is the body of a successful submission.
type SubmitResponse struct {
	Expense             ExpenseResponse    `json:"expense"`
	Approvals           []ApprovalResponse `json:"approvals"`
	AutoApproved        bool               `json:"auto_approved"`
	ActionableApprovers []string           `json:"actionable_approvers,omitempty"`
	AppliedRuleIDs      []string           `json:"applied_rule_ids,omitempty"`
	RuleIssues          []RuleIssue        `json:"rule_issues,omitempty"`
}

// SubmitExpense handles PUT /expenses/:expense_id/submit — the workflow entry
// point. Chain construction, auto-approval, notifications and the audit trail
// all run behind the gateway.
func (s *Server) SubmitExpense(c *gin.Context) {
	res, err := s.gateway.Submit(c.Request.Context(), companyFromCtx(c), actorFromCtx(c), c.Param("expense_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Expense:             expenseToAPI(res.Expense),
		Approvals:           approvalsToAPI(res.Approvals),
		AutoApproved:        res.AutoApproved,
		ActionableApprovers: res.ActionableApprovers,
		AppliedRuleIDs:      res.AppliedRuleIDs,
		RuleIssues:          ruleIssuesToAPI(res.RuleIssues),
	})
}

// ownedExpense loads an expense and verifies the caller submitted it.
func (s *Server) ownedExpense(c *gin.Context, expenseID string) (*ent.Expense, error) {
	exp, err := s.client.Expense.Query().
		Where(entexpense.ID(expenseID), entexpense.CompanyID(companyFromCtx(c))).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeExpenseNotFound, "expense not found")
		}
		return nil, err
	}
	if exp.SubmitterID != actorFromCtx(c) {
		return nil, apperrors.Forbidden(apperrors.CodeForbidden, "expense belongs to another user")
	}
	return exp, nil
}

// visibleExpense loads an expense the caller may read: their own, one they
// hold an approval task for, or any when ADMIN.
func (s *Server) visibleExpense(c *gin.Context, expenseID string) (*ent.Expense, error) {
	ctx := c.Request.Context()
	exp, err := s.client.Expense.Query().
		Where(entexpense.ID(expenseID), entexpense.CompanyID(companyFromCtx(c))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeExpenseNotFound, "expense not found")
		}
		return nil, err
	}

	actor := actorFromCtx(c)
	if exp.SubmitterID == actor || c.GetString("role") == "ADMIN" {
		return exp, nil
	}

	isApprover, err := s.client.Approval.Query().
		Where(entapproval.ExpenseID(expenseID), entapproval.ApproverID(actor)).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if !isApprover {
		return nil, apperrors.NotFound(apperrors.CodeExpenseNotFound, "expense not found")
	}
	return exp, nil
}

func intQuery(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
