package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"expensedesk.io/approvalflow/internal/api/handlers"
	"expensedesk.io/approvalflow/internal/domain"
	"expensedesk.io/approvalflow/internal/governance/approval"
	"expensedesk.io/approvalflow/internal/jobs"
	"expensedesk.io/approvalflow/internal/notification"
)

// ApprovalModule wires the approval gateway with its event fan-out: the
// dispatcher feeds inbox notifications off the request path, and decided
// submissions enqueue receipt scans through River.
type ApprovalModule struct {
	gateway    *approval.Gateway
	dispatcher *domain.EventDispatcher
}

// NewApprovalModule creates the approval module after the River client is
// initialized.
func NewApprovalModule(infra *Infrastructure, workflow *WorkflowModule) (*ApprovalModule, error) {
	if infra == nil || infra.EntClient == nil || infra.RiverClient == nil {
		return nil, fmt.Errorf("approval module requires ent client and river client")
	}
	if workflow == nil {
		return nil, fmt.Errorf("approval module requires the workflow module")
	}

	dispatcher := domain.NewEventDispatcher()
	inboxSender := notification.NewInboxSender(infra.EntClient)
	notification.RegisterHandlers(dispatcher, notification.NewTriggers(inboxSender))

	gateway := approval.NewGateway(
		infra.EntClient,
		workflow.submit,
		workflow.decide,
		infra.AuditLogger,
		dispatcher,
		infra.Pools,
	)
	gateway.SetJobEnqueuer(jobs.NewEnqueuer(infra.RiverClient))

	return &ApprovalModule{gateway: gateway, dispatcher: dispatcher}, nil
}

func (m *ApprovalModule) Name() string { return "approval" }

func (m *ApprovalModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Gateway = m.gateway
}

func (m *ApprovalModule) RegisterWorkers(_ *river.Workers) {}

func (m *ApprovalModule) Shutdown(context.Context) error { return nil }
