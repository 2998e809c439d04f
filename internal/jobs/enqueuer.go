package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
)

// Enqueuer inserts workflow jobs into the River queue.
type Enqueuer struct {
	riverClient *river.Client[pgx.Tx]
}

// NewEnqueuer creates a new Enqueuer.
func NewEnqueuer(riverClient *river.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{riverClient: riverClient}
}

// EnqueueReceiptScan schedules a background receipt scan for the expense.
func (e *Enqueuer) EnqueueReceiptScan(ctx context.Context, expenseID string) error {
	if e == nil || e.riverClient == nil {
		return fmt.Errorf("job enqueuer is not initialized")
	}
	if _, err := e.riverClient.Insert(ctx, ReceiptScanArgs{ExpenseID: expenseID}, nil); err != nil {
		return fmt.Errorf("enqueue receipt_scan for expense %s: %w", expenseID, err)
	}
	return nil
}
