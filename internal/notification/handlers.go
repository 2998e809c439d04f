package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"expensedesk.io/approvalflow/internal/domain"
)

// RegisterHandlers subscribes the notification triggers to workflow events.
// Handlers run on the notification worker pool with the service lifecycle
// context, so delivery survives request cancellation but respects shutdown.
func RegisterHandlers(dispatcher *domain.EventDispatcher, triggers *Triggers) {
	dispatcher.Register(domain.EventExpenseSubmitted, func(ctx context.Context, event *domain.Event) error {
		var p domain.ExpenseSubmittedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		triggers.OnApproversActionable(ctx, p.ExpenseID, p.SubmitterName, p.ApproverIDs)
		return nil
	})

	dispatcher.Register(domain.EventApprovalDecided, func(ctx context.Context, event *domain.Event) error {
		var p domain.ApprovalDecidedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		triggers.OnApproversActionable(ctx, p.ExpenseID, p.SubmitterName, p.NewlyActionableIDs)
		return nil
	})

	dispatcher.Register(domain.EventExpenseApproved, func(ctx context.Context, event *domain.Event) error {
		var p domain.ExpenseDecidedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		triggers.OnExpenseApproved(ctx, p.ExpenseID, p.SubmitterID)
		return nil
	})

	dispatcher.Register(domain.EventExpenseRejected, func(ctx context.Context, event *domain.Event) error {
		var p domain.ExpenseDecidedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		triggers.OnExpenseRejected(ctx, p.ExpenseID, p.SubmitterID, p.DecidedByName, p.Comment)
		return nil
	})

	dispatcher.Register(domain.EventExpenseAutoApproved, func(ctx context.Context, event *domain.Event) error {
		var p domain.ExpenseDecidedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		triggers.OnExpenseAutoApproved(ctx, p.ExpenseID, p.SubmitterID)
		return nil
	})
}
