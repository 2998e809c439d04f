package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	entexpense "expensedesk.io/approvalflow/ent/expense"
	entuser "expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/testutil"
)

func TestCreateExpense_StartsAsDraft(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_create")
	company := testutil.CreateCompany(t, client, "Acme")
	employee := testutil.CreateUser(t, client, company.ID, "alice")

	body, _ := json.Marshal(CreateExpenseRequest{
		Amount:      15000,
		Currency:    "USD",
		Category:    "TRAVEL",
		Description: "Client visit",
		ExpenseDate: time.Now(),
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, employee, http.MethodPost, "/api/v1/expenses", body)
	server.CreateExpense(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var got ExpenseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != entexpense.StatusDRAFT.String() {
		t.Errorf("status = %q, want DRAFT", got.Status)
	}
	if got.SubmitterID != employee.ID {
		t.Errorf("submitter = %q, want %q", got.SubmitterID, employee.ID)
	}
}

func TestCreateExpense_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_amount")
	company := testutil.CreateCompany(t, client, "Acme")
	employee := testutil.CreateUser(t, client, company.ID, "alice")

	body := []byte(`{"amount":0,"currency":"USD","category":"TRAVEL","expense_date":"2026-03-01T00:00:00Z"}`)

	w := httptest.NewRecorder()
	c := authedContext(t, w, employee, http.MethodPost, "/api/v1/expenses", body)
	server.CreateExpense(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateExpense_OnlyDraft(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_update")
	company := testutil.CreateCompany(t, client, "Acme")
	employee := testutil.CreateUser(t, client, company.ID, "alice")
	exp := testutil.CreateDraftExpense(t, client, company.ID, employee.ID, 5000, "MEALS")

	body, _ := json.Marshal(UpdateExpenseRequest{
		Amount:      7500,
		Currency:    "USD",
		Category:    "MEALS",
		ExpenseDate: time.Now(),
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, employee, http.MethodPut, "/api/v1/expenses/"+exp.ID, body)
	c.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.UpdateExpense(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	// No rules configured, so submit auto-approves; the expense is then frozen.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, employee, http.MethodPut, "/api/v1/expenses/"+exp.ID+"/submit", nil)
	c2.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.SubmitExpense(c2)
	if w2.Code != http.StatusOK {
		t.Fatalf("submit status=%d body=%s", w2.Code, w2.Body.String())
	}

	w3 := httptest.NewRecorder()
	c3 := authedContext(t, w3, employee, http.MethodPut, "/api/v1/expenses/"+exp.ID, body)
	c3.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.UpdateExpense(c3)
	if got := errorStatus(t, c3); got != http.StatusConflict {
		t.Errorf("edit after submit status = %d, want %d", got, http.StatusConflict)
	}
}

func TestDeleteExpense_OnlyOwnDraft(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_delete")
	company := testutil.CreateCompany(t, client, "Acme")
	employee := testutil.CreateUser(t, client, company.ID, "alice")
	other := testutil.CreateUser(t, client, company.ID, "bob")
	exp := testutil.CreateDraftExpense(t, client, company.ID, employee.ID, 5000, "MEALS")

	w := httptest.NewRecorder()
	c := authedContext(t, w, other, http.MethodDelete, "/api/v1/expenses/"+exp.ID, nil)
	c.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.DeleteExpense(c)
	if got := errorStatus(t, c); got != http.StatusForbidden {
		t.Fatalf("delete by non-owner status = %d, want %d", got, http.StatusForbidden)
	}

	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, employee, http.MethodDelete, "/api/v1/expenses/"+exp.ID, nil)
	c2.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.DeleteExpense(c2)
	if w2.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w2.Code, w2.Body.String())
	}

	exists, err := client.Expense.Query().Where(entexpense.ID(exp.ID)).Exist(t.Context())
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if exists {
		t.Error("expense still exists after delete")
	}
}

func TestListExpenses_ScopedToSubmitter(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_list")
	company := testutil.CreateCompany(t, client, "Acme")
	alice := testutil.CreateUser(t, client, company.ID, "alice")
	bob := testutil.CreateUser(t, client, company.ID, "bob")
	admin := testutil.CreateUser(t, client, company.ID, "root", testutil.WithRole(entuser.RoleADMIN))

	for i := 0; i < 3; i++ {
		testutil.CreateDraftExpense(t, client, company.ID, alice.ID, int64(1000*(i+1)), "TRAVEL")
	}
	testutil.CreateDraftExpense(t, client, company.ID, bob.ID, 9000, "MEALS")

	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodGet, "/api/v1/expenses", nil)
	server.ListExpenses(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got ExpenseList
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Pagination.Total != 3 {
		t.Errorf("alice sees %d expenses, want 3", got.Pagination.Total)
	}
	for _, item := range got.Items {
		if item.SubmitterID != alice.ID {
			t.Errorf("alice sees expense of %q", item.SubmitterID)
		}
	}

	// Admin sees the whole company.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, admin, http.MethodGet, "/api/v1/expenses", nil)
	server.ListExpenses(c2)
	var adminGot ExpenseList
	if err := json.Unmarshal(w2.Body.Bytes(), &adminGot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if adminGot.Pagination.Total != 4 {
		t.Errorf("admin sees %d expenses, want 4", adminGot.Pagination.Total)
	}
}

func TestListExpenses_Pagination(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_pages")
	company := testutil.CreateCompany(t, client, "Acme")
	alice := testutil.CreateUser(t, client, company.ID, "alice")
	for i := 0; i < 5; i++ {
		testutil.CreateDraftExpense(t, client, company.ID, alice.ID, int64(100+i), "TRAVEL")
	}

	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodGet, fmt.Sprintf("/api/v1/expenses?page=%d&per_page=%d", 2, 2), nil)
	server.ListExpenses(c)

	var got ExpenseList
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Items) != 2 {
		t.Errorf("page 2 has %d items, want 2", len(got.Items))
	}
	if got.Pagination.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", got.Pagination.TotalPages)
	}
}

func TestGetExpense_VisibleToApprover(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "expense_handler_visibility")
	company := testutil.CreateCompany(t, client, "Acme")
	manager := testutil.CreateUser(t, client, company.ID, "boss", testutil.WithRole(entuser.RoleMANAGER))
	alice := testutil.CreateUser(t, client, company.ID, "alice", testutil.WithManager(manager.ID))
	stranger := testutil.CreateUser(t, client, company.ID, "carol")
	exp := testutil.CreateDraftExpense(t, client, company.ID, alice.ID, 5000, "TRAVEL")

	seedApprovalRule(t, server, company.ID, manager.ID)

	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodPut, "/api/v1/expenses/"+exp.ID+"/submit", nil)
	c.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.SubmitExpense(c)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status=%d body=%s", w.Code, w.Body.String())
	}

	// The assigned manager may read the expense.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, manager, http.MethodGet, "/api/v1/expenses/"+exp.ID, nil)
	c2.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.GetExpense(c2)
	if w2.Code != http.StatusOK {
		t.Fatalf("approver read status=%d body=%s", w2.Code, w2.Body.String())
	}

	// An uninvolved colleague gets a 404, not a 403, to avoid leaking existence.
	w3 := httptest.NewRecorder()
	c3 := authedContext(t, w3, stranger, http.MethodGet, "/api/v1/expenses/"+exp.ID, nil)
	c3.Params = gin.Params{{Key: "expense_id", Value: exp.ID}}
	server.GetExpense(c3)
	if got := errorStatus(t, c3); got != http.StatusNotFound {
		t.Errorf("stranger read status = %d, want %d", got, http.StatusNotFound)
	}
}
