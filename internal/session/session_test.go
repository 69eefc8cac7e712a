package session

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookget/bookdesk/internal/model"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("SignedString() error: %v", err)
	}
	return token
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	app := test.NewApp()
	return NewManager(app.Preferences())
}

func TestLoginLogout(t *testing.T) {
	m := newTestManager(t)

	if m.IsAuthenticated() {
		t.Error("Expected fresh manager to be unauthenticated")
	}
	if m.Role() != model.RoleAnonymous {
		t.Errorf("Expected RoleAnonymous, got %v", m.Role())
	}

	m.Login("tok-abc", "alice")
	if !m.IsAuthenticated() {
		t.Error("Expected authenticated after Login")
	}
	if m.Token() != "tok-abc" {
		t.Errorf("Expected token tok-abc, got %s", m.Token())
	}
	if m.Username() != "alice" {
		t.Errorf("Expected username alice, got %s", m.Username())
	}
	if m.Role() != model.RoleUser {
		t.Errorf("Expected RoleUser, got %v", m.Role())
	}

	m.Logout()
	if m.IsAuthenticated() || m.Token() != "" || m.Username() != "" {
		t.Error("Expected both keys cleared after Logout")
	}
}

func TestAdminRole(t *testing.T) {
	m := newTestManager(t)
	m.Login("tok", "Admin")
	if m.Role() != model.RoleAdmin {
		t.Errorf("Expected RoleAdmin, got %v", m.Role())
	}
}

func TestRestoreKeepsValidToken(t *testing.T) {
	m := newTestManager(t)
	token := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	m.Login(token, "alice")

	m.Restore()
	if !m.IsAuthenticated() {
		t.Error("Expected valid session to survive Restore")
	}
	if m.Username() != "alice" {
		t.Errorf("Expected username preserved, got %s", m.Username())
	}
}

func TestRestoreDropsExpiredToken(t *testing.T) {
	m := newTestManager(t)
	token := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	m.Login(token, "alice")

	m.Restore()
	if m.IsAuthenticated() {
		t.Error("Expected expired session to be cleared")
	}
	if m.Username() != "" {
		t.Errorf("Expected username cleared with token, got %s", m.Username())
	}
}

func TestRestoreDropsUnparseableToken(t *testing.T) {
	m := newTestManager(t)
	m.Login("not-a-jwt", "alice")

	m.Restore()
	if m.IsAuthenticated() {
		t.Error("Expected unparseable token to be cleared")
	}
}

func TestRestoreDropsTokenWithoutExpiry(t *testing.T) {
	m := newTestManager(t)
	token := signedToken(t, jwt.MapClaims{"sub": "alice"})
	m.Login(token, "alice")

	m.Restore()
	if m.IsAuthenticated() {
		t.Error("Expected token without expiry to be cleared")
	}
}

func TestRestoreNoopWhenLoggedOut(t *testing.T) {
	m := newTestManager(t)
	m.Restore()
	if m.IsAuthenticated() {
		t.Error("Expected manager to stay logged out")
	}
}

func TestUserID(t *testing.T) {
	m := newTestManager(t)

	if _, ok := m.UserID(); ok {
		t.Error("Expected no user id when logged out")
	}

	token := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"uid": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	m.Login(token, "alice")
	id, ok := m.UserID()
	if !ok || id != 42 {
		t.Errorf("Expected user id 42, got %d (ok=%v)", id, ok)
	}
}

func TestUserIDMissingClaim(t *testing.T) {
	m := newTestManager(t)
	token := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	m.Login(token, "alice")
	if _, ok := m.UserID(); ok {
		t.Error("Expected no user id for token without uid claim")
	}
}
