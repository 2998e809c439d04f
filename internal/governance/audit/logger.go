// Package audit implements the audit trail.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, companyID, actorID, action, resourceType, resourceID string, metadata map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetCompanyID(companyID).
		SetActorID(actorID).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogExpense records an expense lifecycle action (submitted, auto_approved,
// approved, rejected).
func (l *Logger) LogExpense(ctx context.Context, companyID, actorID, action, expenseID string, metadata map[string]interface{}) error {
	return l.LogAction(ctx, companyID, actorID, "expense."+action, "expense", expenseID, metadata)
}

// LogDecision records one approver decision.
func (l *Logger) LogDecision(ctx context.Context, companyID, actorID, decision, approvalID, expenseID string) error {
	return l.LogAction(ctx, companyID, actorID, "approval."+decision, "approval", approvalID, map[string]interface{}{
		"expense_id": expenseID,
		"decision":   decision,
	})
}

// LogRuleChange records rule administration (created, updated, deleted).
func (l *Logger) LogRuleChange(ctx context.Context, companyID, actorID, action, ruleID string) error {
	return l.LogAction(ctx, companyID, actorID, "rule."+action, "approval_rule", ruleID, nil)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
