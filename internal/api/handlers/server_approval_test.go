package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	entexpense "expensedesk.io/approvalflow/ent/expense"
	entuser "expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/testutil"
)

func TestApprovalFlow_SubmitDecideAndInspect(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "approval_handler_flow")
	company := testutil.CreateCompany(t, client, "Acme")
	approver := testutil.CreateUser(t, client, company.ID, "carol", testutil.WithRole(entuser.RoleMANAGER))
	alice := testutil.CreateUser(t, client, company.ID, "alice")
	exp := testutil.CreateDraftExpense(t, client, company.ID, alice.ID, 20000, "TRAVEL")

	seedApprovalRule(t, server, company.ID, approver.ID)

	// Submit.
	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodPut, "/api/v1/expenses/"+exp.ID+"/submit", nil)
	c.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.SubmitExpense(c)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status=%d body=%s", w.Code, w.Body.String())
	}
	var submitted SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	if submitted.AutoApproved {
		t.Fatal("expense auto-approved despite a matching rule")
	}
	if len(submitted.Approvals) != 1 {
		t.Fatalf("got %d approval tasks, want 1", len(submitted.Approvals))
	}

	// The approver sees the task in their pending list.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, approver, http.MethodGet, "/api/v1/approvals/pending", nil)
	server.ListPendingApprovals(c2)
	if w2.Code != http.StatusOK {
		t.Fatalf("pending status=%d body=%s", w2.Code, w2.Body.String())
	}
	var pending PendingTaskList
	if err := json.Unmarshal(w2.Body.Bytes(), &pending); err != nil {
		t.Fatalf("decode pending: %v", err)
	}
	if len(pending.Items) != 1 || pending.Items[0].Approval.ID != submitted.Approvals[0].ID {
		t.Fatalf("pending = %+v, want the submitted task", pending.Items)
	}

	// Approve.
	body, _ := json.Marshal(DecideRequest{Decision: "APPROVE", Comment: "ok"})
	w3 := httptest.NewRecorder()
	c3 := authedContext(t, w3, approver, http.MethodPut, "/api/v1/approvals/"+submitted.Approvals[0].ID, body)
	c3.Params = gin.Params{{Key: "approval_id", Value: submitted.Approvals[0].ID}}
	server.DecideApproval(c3)
	if w3.Code != http.StatusOK {
		t.Fatalf("decide status=%d body=%s", w3.Code, w3.Body.String())
	}
	var decided DecisionResponse
	if err := json.Unmarshal(w3.Body.Bytes(), &decided); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decided.Outcome != "APPROVED" {
		t.Errorf("outcome = %q, want APPROVED", decided.Outcome)
	}
	if decided.Expense.Status != entexpense.StatusAPPROVED.String() {
		t.Errorf("expense status = %q, want APPROVED", decided.Expense.Status)
	}

	// Chain inspection shows the settled lane.
	w4 := httptest.NewRecorder()
	c4 := authedContext(t, w4, alice, http.MethodGet, "/api/v1/expenses/"+exp.ID+"/chain", nil)
	c4.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.GetExpenseChain(c4)
	if w4.Code != http.StatusOK {
		t.Fatalf("chain status=%d body=%s", w4.Code, w4.Body.String())
	}
	var chain ChainResponse
	if err := json.Unmarshal(w4.Body.Bytes(), &chain); err != nil {
		t.Fatalf("decode chain: %v", err)
	}
	if chain.Outcome != "APPROVED" {
		t.Errorf("chain outcome = %q, want APPROVED", chain.Outcome)
	}
	for key, lane := range chain.Lanes {
		if lane != "SATISFIED" {
			t.Errorf("lane %q = %q, want SATISFIED", key, lane)
		}
	}
}

func TestDecideApproval_RejectsUnknownVerdict(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "approval_handler_verdict")
	company := testutil.CreateCompany(t, client, "Acme")
	user := testutil.CreateUser(t, client, company.ID, "alice")

	body, _ := json.Marshal(DecideRequest{Decision: "MAYBE"})
	w := httptest.NewRecorder()
	c := authedContext(t, w, user, http.MethodPut, "/api/v1/approvals/ap-1", body)
	c.Params = gin.Params{{Key: "approval_id", Value: "ap-1"}}
	server.DecideApproval(c)

	if got := errorStatus(t, c); got != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestListPendingApprovals_EmptyWhenNothingActionable(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "approval_handler_empty")
	company := testutil.CreateCompany(t, client, "Acme")
	user := testutil.CreateUser(t, client, company.ID, "alice")

	w := httptest.NewRecorder()
	c := authedContext(t, w, user, http.MethodGet, "/api/v1/approvals/pending", nil)
	server.ListPendingApprovals(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var pending PendingTaskList
	if err := json.Unmarshal(w.Body.Bytes(), &pending); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pending.Items) != 0 {
		t.Errorf("items = %+v, want empty", pending.Items)
	}
}
