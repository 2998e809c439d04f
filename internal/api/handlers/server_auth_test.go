package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expensedesk.io/approvalflow/internal/api/middleware"
	"expensedesk.io/approvalflow/internal/testutil"
)

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("Passw0rd!Example")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}

	if cost != passwordHashCost {
		t.Fatalf("bcrypt cost = %d, want %d", cost, passwordHashCost)
	}
}

func TestLogin_IssuesTenantScopedToken(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "auth_handler_login")
	server.jwtCfg = middleware.JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "approvalflow",
		ExpiresIn:  time.Hour,
	}

	company := testutil.CreateCompany(t, client, "Acme")
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := client.User.Create().
		SetID(testutil.NewID(t)).
		SetCompanyID(company.ID).
		SetName("alice").
		SetEmail("alice@example.test").
		SetPasswordHash(hash).
		Save(t.Context())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	body, _ := json.Marshal(LoginRequest{Email: "alice@example.test", Password: "s3cret-password"})
	w := httptest.NewRecorder()
	c := authedContext(t, w, user, http.MethodPost, "/api/v1/auth/login", body)
	server.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Token == "" {
		t.Fatal("empty token")
	}

	// Wrong password is rejected without detail.
	badBody, _ := json.Marshal(LoginRequest{Email: "alice@example.test", Password: "wrong"})
	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, user, http.MethodPost, "/api/v1/auth/login", badBody)
	server.Login(c2)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status=%d body=%s", w2.Code, w2.Body.String())
	}
}

func TestGetCurrentUser_ReturnsProfile(t *testing.T) {
	t.Parallel()

	server, client := newTestServer(t, "auth_handler_me")
	company := testutil.CreateCompany(t, client, "Acme")
	manager := testutil.CreateUser(t, client, company.ID, "boss")
	user := testutil.CreateUser(t, client, company.ID, "alice",
		testutil.WithManager(manager.ID), testutil.WithDepartment("ENGINEERING"))

	w := httptest.NewRecorder()
	c := authedContext(t, w, user, http.MethodGet, "/api/v1/auth/me", nil)
	server.GetCurrentUser(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != user.ID || got.Department != "ENGINEERING" || got.ManagerID != manager.ID {
		t.Errorf("unexpected profile: %+v", got)
	}
}
