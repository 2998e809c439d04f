package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
)

// Rule administration. All routes here sit behind RequireRole("ADMIN").

// RuleList is the body of GET /admin/rules.
type RuleList struct {
	Items []RuleResponse `json:"items"`
}

// ListRules handles GET /admin/rules.
func (s *Server) ListRules(c *gin.Context) {
	views, err := s.ruleService.ListRules(c.Request.Context(), companyFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]RuleResponse, 0, len(views))
	for _, v := range views {
		items = append(items, ruleToAPI(v))
	}
	c.JSON(http.StatusOK, RuleList{Items: items})
}

// GetRule handles GET /admin/rules/:rule_id.
func (s *Server) GetRule(c *gin.Context) {
	view, err := s.ruleService.GetRule(c.Request.Context(), companyFromCtx(c), c.Param("rule_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ruleToAPI(view))
}

// CreateRule handles POST /admin/rules.
func (s *Server) CreateRule(c *gin.Context) {
	var req service.RuleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	actor := actorFromCtx(c)
	view, err := s.ruleService.CreateRule(c.Request.Context(), companyFromCtx(c), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	s.auditRuleChange(c, actor, "created", view.Rule.ID)
	c.JSON(http.StatusCreated, ruleToAPI(view))
}

// UpdateRule handles PUT /admin/rules/:rule_id. In-flight chains keep their
// snapshot; only new submissions see the edit.
func (s *Server) UpdateRule(c *gin.Context) {
	var req service.RuleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	actor := actorFromCtx(c)
	view, err := s.ruleService.UpdateRule(c.Request.Context(), companyFromCtx(c), c.Param("rule_id"), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	s.auditRuleChange(c, actor, "updated", view.Rule.ID)
	c.JSON(http.StatusOK, ruleToAPI(view))
}

// DeleteRule handles DELETE /admin/rules/:rule_id. Blocked while any pending
// approval references the rule.
func (s *Server) DeleteRule(c *gin.Context) {
	ruleID := c.Param("rule_id")
	actor := actorFromCtx(c)

	if err := s.ruleService.DeleteRule(c.Request.Context(), companyFromCtx(c), ruleID, actor); err != nil {
		_ = c.Error(err)
		return
	}

	s.auditRuleChange(c, actor, "deleted", ruleID)
	c.Status(http.StatusNoContent)
}

func (s *Server) auditRuleChange(c *gin.Context, actorID, action, ruleID string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogRuleChange(c.Request.Context(), companyFromCtx(c), actorID, action, ruleID); err != nil {
		logger.Warn("audit log write failed",
			zap.Error(err),
			zap.String("action", "rule."+action),
			zap.String("rule_id", ruleID),
		)
	}
}
