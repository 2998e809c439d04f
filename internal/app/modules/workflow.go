package modules

import (
	"context"

	"github.com/riverqueue/river"

	"expensedesk.io/approvalflow/internal/api/handlers"
	"expensedesk.io/approvalflow/internal/jobs"
	"expensedesk.io/approvalflow/internal/service"
	"expensedesk.io/approvalflow/internal/usecase"
)

// WorkflowModule wires the expense workflow: directory lookups, rule
// administration, chain construction and decision processing.
type WorkflowModule struct {
	infra       *Infrastructure
	directory   *service.Directory
	ruleService *service.RuleService
	submit      *usecase.SubmitExpense
	decide      *usecase.RecordDecision
}

// NewWorkflowModule creates the workflow module with explicit constructor wiring.
func NewWorkflowModule(infra *Infrastructure) *WorkflowModule {
	directory := service.NewDirectory(infra.EntClient)
	ruleService := service.NewRuleService(infra.EntClient, directory)

	return &WorkflowModule{
		infra:       infra,
		directory:   directory,
		ruleService: ruleService,
		submit:      usecase.NewSubmitExpense(infra.EntClient, directory, ruleService),
		decide:      usecase.NewRecordDecision(infra.EntClient),
	}
}

func (m *WorkflowModule) Name() string { return "workflow" }

func (m *WorkflowModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.RuleService = m.ruleService
}

func (m *WorkflowModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewReceiptScanWorker(m.infra.EntClient, m.infra.AuditLogger))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.infra.EntClient, m.infra.Config.River.NotificationRetention))
}

func (m *WorkflowModule) Shutdown(context.Context) error { return nil }
