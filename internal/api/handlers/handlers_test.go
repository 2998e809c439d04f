package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/internal/api/middleware"
	"expensedesk.io/approvalflow/internal/domain"
	"expensedesk.io/approvalflow/internal/governance/approval"
	"expensedesk.io/approvalflow/internal/governance/audit"
	"expensedesk.io/approvalflow/internal/notification"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
	"expensedesk.io/approvalflow/internal/testutil"
	"expensedesk.io/approvalflow/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// newTestServer wires a Server against an isolated database schema the way
// the app bootstrap does, minus the queue and worker pools (events dispatch
// synchronously).
func newTestServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)

	directory := service.NewDirectory(client)
	ruleService := service.NewRuleService(client, directory)
	submit := usecase.NewSubmitExpense(client, directory, ruleService)
	decide := usecase.NewRecordDecision(client)
	auditLogger := audit.NewLogger(client)

	dispatcher := domain.NewEventDispatcher()
	triggers := notification.NewTriggers(notification.NewInboxSender(client))
	notification.RegisterHandlers(dispatcher, triggers)

	gateway := approval.NewGateway(client, submit, decide, auditLogger, dispatcher, nil)

	server := NewServer(ServerDeps{
		EntClient:   client,
		Audit:       auditLogger,
		RuleService: ruleService,
		Gateway:     gateway,
	})
	return server, client
}

// authedContext builds a gin test context carrying an authenticated user, the
// way JWTAuth leaves it.
func authedContext(t *testing.T, w *httptest.ResponseRecorder, user *ent.User, method, path string, body []byte) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req = req.WithContext(middleware.SetUserContext(req.Context(), user.ID, user.CompanyID, user.Role.String()))
	c.Request = req
	c.Set("user_id", user.ID)
	c.Set("company_id", user.CompanyID)
	c.Set("role", user.Role.String())
	return c
}

// seedApprovalRule creates an active parallel rule matching every expense
// with a single approver.
func seedApprovalRule(t *testing.T, server *Server, companyID, approverID string) *service.RuleView {
	t.Helper()

	view, err := server.ruleService.CreateRule(t.Context(), companyID, "seed", service.RuleInput{
		Name:                  "catch-all",
		Priority:              10,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions: []service.ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 1},
		},
		Approvers: []service.ApproverInput{
			{ApproverID: approverID, Required: true},
		},
	})
	if err != nil {
		t.Fatalf("seed rule: %v", err)
	}
	return view
}

// errorStatus returns the HTTP status the ErrorHandler middleware would have
// written for the handler's recorded error.
func errorStatus(t *testing.T, c *gin.Context) int {
	t.Helper()
	if len(c.Errors) == 0 {
		t.Fatal("expected a handler error")
	}
	if appErr, ok := apperrors.IsAppError(c.Errors.Last().Err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
