package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	entuser "expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/service"
	"expensedesk.io/approvalflow/internal/testutil"
)

func TestCreateRule_PersistsConditionsAndApprovers(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "rules_handler_create")
	company := testutil.CreateCompany(t, client, "Acme")
	admin := testutil.CreateUser(t, client, company.ID, "root", testutil.WithRole(entuser.RoleADMIN))
	approver := testutil.CreateUser(t, client, company.ID, "carol", testutil.WithRole(entuser.RoleMANAGER))

	seq1, seq2 := 1, 2
	body, _ := json.Marshal(service.RuleInput{
		Name:                  "travel over 500",
		Priority:              5,
		SequenceRequired:      true,
		MinApprovalPercentage: 100,
		Active:                true,
		Conditions: []service.ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 50000},
			{Kind: "CATEGORY", Values: []string{"TRAVEL"}},
		},
		Approvers: []service.ApproverInput{
			{ApproverID: approver.ID, SequenceOrder: &seq1, Required: true},
			{ApproverID: admin.ID, SequenceOrder: &seq2, Required: true},
		},
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, admin, http.MethodPost, "/api/v1/admin/rules", body)
	server.CreateRule(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got RuleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Conditions) != 2 || len(got.Approvers) != 2 {
		t.Fatalf("conditions=%d approvers=%d, want 2/2", len(got.Conditions), len(got.Approvers))
	}
	if !got.SequenceRequired {
		t.Error("is_sequence_required not persisted")
	}
}

func TestCreateRule_RejectsGappySequence(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "rules_handler_sequence")
	company := testutil.CreateCompany(t, client, "Acme")
	admin := testutil.CreateUser(t, client, company.ID, "root", testutil.WithRole(entuser.RoleADMIN))
	approver := testutil.CreateUser(t, client, company.ID, "carol")

	seq3 := 3
	body, _ := json.Marshal(service.RuleInput{
		Name:                  "broken",
		MinApprovalPercentage: 100,
		SequenceRequired:      true,
		Active:                true,
		Approvers: []service.ApproverInput{
			{ApproverID: approver.ID, SequenceOrder: &seq3, Required: true},
		},
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, admin, http.MethodPost, "/api/v1/admin/rules", body)
	server.CreateRule(c)

	if got := errorStatus(t, c); got != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestDeleteRule_BlockedWhileInFlight(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "rules_handler_delete")
	company := testutil.CreateCompany(t, client, "Acme")
	admin := testutil.CreateUser(t, client, company.ID, "root", testutil.WithRole(entuser.RoleADMIN))
	approver := testutil.CreateUser(t, client, company.ID, "carol", testutil.WithRole(entuser.RoleMANAGER))
	alice := testutil.CreateUser(t, client, company.ID, "alice")
	exp := testutil.CreateDraftExpense(t, client, company.ID, alice.ID, 20000, "TRAVEL")

	rule := seedApprovalRule(t, server, company.ID, approver.ID)

	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodPut, "/api/v1/expenses/"+exp.ID+"/submit", nil)
	c.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.SubmitExpense(c)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status=%d body=%s", w.Code, w.Body.String())
	}

	// A pending chain references the rule: deletion must be refused.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, admin, http.MethodDelete, "/api/v1/admin/rules/"+rule.Rule.ID, nil)
	c2.Params = gin.Params{{Key: "rule_id", Value: rule.Rule.ID}}
	server.DeleteRule(c2)
	if got := errorStatus(t, c2); got != http.StatusConflict {
		t.Fatalf("delete in-flight rule status = %d, want %d", got, http.StatusConflict)
	}

	// Settle the chain, then deletion goes through.
	pending, err := server.gateway.ListPending(t.Context(), company.ID, approver.ID)
	if err != nil || len(pending) != 1 {
		t.Fatalf("pending: %v (%d items)", err, len(pending))
	}
	body, _ := json.Marshal(DecideRequest{Decision: "APPROVE"})
	w3 := httptest.NewRecorder()
	c3 := authedContext(t, w3, approver, http.MethodPut, "/api/v1/approvals/"+pending[0].Approval.ID, body)
	c3.Params = gin.Params{{Key: "approval_id", Value: pending[0].Approval.ID}}
	server.DecideApproval(c3)
	if w3.Code != http.StatusOK {
		t.Fatalf("decide status=%d body=%s", w3.Code, w3.Body.String())
	}

	w4 := httptest.NewRecorder()
	c4 := authedContext(t, w4, admin, http.MethodDelete, "/api/v1/admin/rules/"+rule.Rule.ID, nil)
	c4.Params = gin.Params{{Key: "rule_id", Value: rule.Rule.ID}}
	server.DeleteRule(c4)
	if w4.Code != http.StatusNoContent {
		t.Fatalf("delete settled rule status=%d body=%s", w4.Code, w4.Body.String())
	}
}

func TestListRules_OrderedByPriority(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "rules_handler_list")
	company := testutil.CreateCompany(t, client, "Acme")
	admin := testutil.CreateUser(t, client, company.ID, "root", testutil.WithRole(entuser.RoleADMIN))
	approver := testutil.CreateUser(t, client, company.ID, "carol")

	for _, priority := range []int{30, 10, 20} {
		if _, err := server.ruleService.CreateRule(t.Context(), company.ID, admin.ID, service.RuleInput{
			Name:                  "rule",
			Priority:              priority,
			MinApprovalPercentage: 100,
			Active:                true,
			Approvers:             []service.ApproverInput{{ApproverID: approver.ID, Required: true}},
		}); err != nil {
			t.Fatalf("seed rule: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c := authedContext(t, w, admin, http.MethodGet, "/api/v1/admin/rules", nil)
	server.ListRules(c)

	var got RuleList
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("got %d rules, want 3", len(got.Items))
	}
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i-1].Priority > got.Items[i].Priority {
			t.Errorf("rules out of priority order: %d before %d", got.Items[i-1].Priority, got.Items[i].Priority)
		}
	}
}
