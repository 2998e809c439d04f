package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	entnotification "expensedesk.io/approvalflow/ent/notification"
	"expensedesk.io/approvalflow/internal/notification"
	"expensedesk.io/approvalflow/internal/testutil"
)

func TestNotificationHandlers_UserScoped(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "notification_handler_scoped")
	company := testutil.CreateCompany(t, client, "Acme")
	alice := testutil.CreateUser(t, client, company.ID, "alice")
	bob := testutil.CreateUser(t, client, company.ID, "bob")

	sender := notification.NewInboxSender(client)
	for i := 0; i < 2; i++ {
		if err := sender.Send(t.Context(), notification.Params{
			RecipientID: alice.ID,
			Type:        notification.TypeApprovalPending,
			Title:       "Expense awaiting your approval",
		}); err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}
	if err := sender.Send(t.Context(), notification.Params{
		RecipientID: bob.ID,
		Type:        notification.TypeExpenseApproved,
		Title:       "Your expense was approved",
	}); err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	// Alice only sees her own inbox.
	w := httptest.NewRecorder()
	c := authedContext(t, w, alice, http.MethodGet, "/api/v1/notifications", nil)
	server.ListNotifications(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got NotificationList
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Pagination.Total != 2 {
		t.Fatalf("alice inbox = %d entries, want 2", got.Pagination.Total)
	}

	// Unread count drops after marking one read.
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, alice, http.MethodPost, "/api/v1/notifications/"+got.Items[0].ID+"/read", nil)
	c2.Params = gin.Params{{Key: "notification_id", Value: got.Items[0].ID}}
	server.MarkNotificationRead(c2)
	if w2.Code != http.StatusNoContent {
		t.Fatalf("mark read status=%d body=%s", w2.Code, w2.Body.String())
	}

	w3 := httptest.NewRecorder()
	c3 := authedContext(t, w3, alice, http.MethodGet, "/api/v1/notifications/unread-count", nil)
	server.GetUnreadCount(c3)
	var count UnreadCount
	if err := json.Unmarshal(w3.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode count: %v", err)
	}
	if count.Count != 1 {
		t.Errorf("unread = %d, want 1", count.Count)
	}

	// Bob's entry cannot be marked by alice.
	bobEntry, err := client.Notification.Query().
		Where(entnotification.RecipientID(bob.ID)).
		Only(t.Context())
	if err != nil {
		t.Fatalf("query bob entry: %v", err)
	}
	w4 := httptest.NewRecorder()
	c4 := authedContext(t, w4, alice, http.MethodPost, "/api/v1/notifications/"+bobEntry.ID+"/read", nil)
	c4.Params = gin.Params{{Key: "notification_id", Value: bobEntry.ID}}
	server.MarkNotificationRead(c4)
	if w4.Code != http.StatusNotFound {
		t.Errorf("cross-user mark read status=%d, want %d", w4.Code, http.StatusNotFound)
	}

	// Read-all clears the rest.
	w5 := httptest.NewRecorder()
	c5 := authedContext(t, w5, alice, http.MethodPost, "/api/v1/notifications/read-all", nil)
	server.MarkAllNotificationsRead(c5)
	if w5.Code != http.StatusNoContent {
		t.Fatalf("read-all status=%d", w5.Code)
	}

	remaining, err := client.Notification.Query().
		Where(entnotification.RecipientID(alice.ID), entnotification.ReadEQ(false)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 0 {
		t.Errorf("unread after read-all = %d, want 0", remaining)
	}
}
