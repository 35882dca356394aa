package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/wellnest-hq/wellnest_backend/internal/repo/enttest"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

func newService(t *testing.T) Service {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:auth?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:       pasetotoken.ModeLocal,
		Issuer:     "wellnest",
		Audience:   "wellnest-app",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, pasetotoken.NewLocalKeys())
	if err != nil {
		t.Fatalf("paseto manager: %v", err)
	}

	return New(client, rdb, mgr)
}

func TestSignupAndLoginUser(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tokens, err := svc.SignupUser(ctx, SignupUserRequest{
		DisplayName: "Alex Rivera",
		Email:       "Alex@Example.com",
		Password:    "correcthorse",
	})
	if err != nil {
		t.Fatalf("SignupUser: %v", err)
	}
	if tokens.Role != pasetotoken.RoleUser {
		t.Errorf("role = %s, want user", tokens.Role)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("tokens missing")
	}

	// Email is stored lowercase, login is case-insensitive.
	login, err := svc.Login(ctx, LoginRequest{
		Email:    "alex@example.com",
		Password: "correcthorse",
		Role:     "user",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.AccountID != tokens.AccountID {
		t.Error("login returned a different account")
	}
}

func TestSignupTherapist(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tokens, err := svc.SignupTherapist(ctx, SignupTherapistRequest{
		DisplayName:    "Dr. Sarah Johnson",
		Email:          "sarah@example.com",
		Password:       "correcthorse",
		Specialization: "Cognitive Behavioral Therapy",
	})
	if err != nil {
		t.Fatalf("SignupTherapist: %v", err)
	}
	if tokens.Role != pasetotoken.RoleTherapist {
		t.Errorf("role = %s, want therapist", tokens.Role)
	}

	// The same email may exist on the user side, roles are separate pools.
	if _, err := svc.SignupUser(ctx, SignupUserRequest{
		DisplayName: "Sarah",
		Email:       "sarah@example.com",
		Password:    "correcthorse",
	}); err != nil {
		t.Fatalf("SignupUser with therapist email: %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     SignupUserRequest
		wantErr error
	}{
		{"bad email", SignupUserRequest{Email: "not-an-email", Password: "correcthorse"}, ErrInvalidEmail},
		{"short password", SignupUserRequest{Email: "a@example.com", Password: "short"}, ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SignupUser(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("SignupUser error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	req := SignupUserRequest{DisplayName: "Alex", Email: "alex@example.com", Password: "correcthorse"}
	if _, err := svc.SignupUser(ctx, req); err != nil {
		t.Fatalf("SignupUser: %v", err)
	}
	if _, err := svc.SignupUser(ctx, req); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("second SignupUser error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.SignupUser(ctx, SignupUserRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "correcthorse",
	}); err != nil {
		t.Fatalf("SignupUser: %v", err)
	}

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{"wrong password", LoginRequest{Email: "alex@example.com", Password: "wrong", Role: "user"}, ErrInvalidCredentials},
		{"unknown email", LoginRequest{Email: "nobody@example.com", Password: "correcthorse", Role: "user"}, ErrInvalidCredentials},
		{"wrong side", LoginRequest{Email: "alex@example.com", Password: "correcthorse", Role: "therapist"}, ErrInvalidCredentials},
		{"bad role", LoginRequest{Email: "alex@example.com", Password: "correcthorse", Role: "admin"}, ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Login error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRefreshAndLogout(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tokens, err := svc.SignupUser(ctx, SignupUserRequest{
		DisplayName: "Alex", Email: "alex@example.com", Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("SignupUser: %v", err)
	}

	refreshed, err := svc.RefreshTokens(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshTokens: %v", err)
	}
	if refreshed.RefreshToken != tokens.RefreshToken {
		t.Error("refresh token should be unchanged")
	}
	if refreshed.AccessToken == "" {
		t.Error("no new access token")
	}

	// Access tokens are not accepted for refresh.
	if _, err := svc.RefreshTokens(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("RefreshTokens with access token error = %v, want ErrInvalidToken", err)
	}

	// After logout the session is gone.
	sid := sessionIDFrom(t, svc, tokens.RefreshToken)
	if err := svc.Logout(ctx, sid); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.RefreshTokens(ctx, tokens.RefreshToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("RefreshTokens after logout error = %v, want ErrSessionNotFound", err)
	}
}

func sessionIDFrom(t *testing.T, svc Service, refreshToken string) uuid.UUID {
	t.Helper()
	claims, err := svc.(*authService).paseto.Verify(refreshToken)
	if err != nil {
		t.Fatalf("verify refresh token: %v", err)
	}
	if claims.SessionID == nil {
		t.Fatal("refresh token has no session id")
	}
	return *claims.SessionID
}
