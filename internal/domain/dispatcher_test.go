package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensedesk.io/approvalflow/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestDispatcherRoutesToRegisteredHandlers(t *testing.T) {
	d := NewEventDispatcher()

	var calls []string
	d.Register(EventExpenseApproved, func(_ context.Context, e *Event) error {
		calls = append(calls, "first:"+string(e.Type))
		return nil
	})
	d.Register(EventExpenseApproved, func(_ context.Context, e *Event) error {
		calls = append(calls, "second:"+string(e.Type))
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{Type: EventExpenseApproved})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:EXPENSE_APPROVED", "second:EXPENSE_APPROVED"}, calls)
}

func TestDispatcherBestEffortOnFailure(t *testing.T) {
	d := NewEventDispatcher()

	boom := errors.New("sink unavailable")
	ran := false
	d.Register(EventExpenseRejected, func(context.Context, *Event) error { return boom })
	d.Register(EventExpenseRejected, func(context.Context, *Event) error {
		ran = true
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{Type: EventExpenseRejected})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran, "later handlers still run after a failure")
}

func TestDispatcherNoHandlersIsNoop(t *testing.T) {
	d := NewEventDispatcher()
	assert.NoError(t, d.Dispatch(context.Background(), &Event{Type: EventRuleCreated}))
}

func TestPayloadRoundTrips(t *testing.T) {
	raw, err := ExpenseDecidedPayload{ExpenseID: "exp-1", SubmitterID: "u-1", Status: "APPROVED"}.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expense_id":"exp-1"`)
}
