package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "wellnest",
		Audience:  "wellnest-app",
		AccessTTL: 15 * time.Minute,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	m := newManager(t)
	accountID := uuid.New()
	sessionID := uuid.New()

	token, err := m.IssueAccess(accountID, RoleTherapist, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("type = %s, want access", claims.Type)
	}
	if claims.AccountID != accountID {
		t.Errorf("account id mismatch")
	}
	if claims.Role != RoleTherapist {
		t.Errorf("role = %s, want therapist", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("session id mismatch")
	}
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	m1 := newManager(t)
	m2 := newManager(t)

	token, err := m1.IssueAccess(uuid.New(), RoleUser, nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := m2.Verify(token); err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newManager(t)
	if _, err := m.Verify("v4.local.garbage"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseRole(t *testing.T) {
	if _, ok := ParseRole("admin"); ok {
		t.Error("ParseRole accepted unknown role")
	}
	if r, ok := ParseRole("user"); !ok || r != RoleUser {
		t.Error("ParseRole rejected user")
	}
	if r, ok := ParseRole("therapist"); !ok || r != RoleTherapist {
		t.Error("ParseRole rejected therapist")
	}
}
