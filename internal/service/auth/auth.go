package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	entuser "github.com/wellnest-hq/wellnest_backend/internal/repo/user"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
	"github.com/wellnest-hq/wellnest_backend/pkg/util/password"
)

const minPasswordLen = 8

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SignupUserRequest struct {
	DisplayName string
	Email       string
	Password    string
}

type SignupTherapistRequest struct {
	DisplayName    string
	Email          string
	Password       string
	Specialization string
}

type LoginRequest struct {
	Email    string
	Password string
	Role     string // "user" | "therapist"
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	AccountID    uuid.UUID
	Role         pasetotoken.Role
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	SignupUser(ctx context.Context, req SignupUserRequest) (*AuthTokens, error)
	SignupTherapist(ctx context.Context, req SignupTherapistRequest) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
}

func New(db *repo.Client, rdb *redis.Client, paseto *pasetotoken.Manager) Service {
	return &authService{db: db, rdb: rdb, paseto: paseto}
}

func (s *authService) SignupUser(ctx context.Context, req SignupUserRequest) (*AuthTokens, error) {
	email, err := validateSignup(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.User.Query().Where(entuser.Email(email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetDisplayName(strings.TrimSpace(req.DisplayName)).
		SetEmail(email).
		SetPasswordHash(passHash).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createSession(ctx, u.ID, pasetotoken.RoleUser)
}

func (s *authService) SignupTherapist(ctx context.Context, req SignupTherapistRequest) (*AuthTokens, error) {
	email, err := validateSignup(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.Therapist.Query().Where(enttherapist.Email(email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	th, err := s.db.Therapist.Create().
		SetDisplayName(strings.TrimSpace(req.DisplayName)).
		SetEmail(email).
		SetPasswordHash(passHash).
		SetSpecialization(strings.TrimSpace(req.Specialization)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create therapist: %w", err)
	}

	return s.createSession(ctx, th.ID, pasetotoken.RoleTherapist)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role, ok := pasetotoken.ParseRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	var (
		accountID uuid.UUID
		passHash  string
	)
	switch role {
	case pasetotoken.RoleUser:
		u, err := s.db.User.Query().Where(entuser.Email(email)).Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("find user: %w", err)
		}
		accountID, passHash = u.ID, u.PasswordHash
	case pasetotoken.RoleTherapist:
		th, err := s.db.Therapist.Query().Where(enttherapist.Email(email)).Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("find therapist: %w", err)
		}
		accountID, passHash = th.ID, th.PasswordHash
	}

	if err := password.Verify(passHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, accountID, role)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend the session on each refresh.
	s.rdb.Expire(ctx, sessionKey, s.paseto.RefreshTTL())

	// New access token only, the refresh token lives until logout.
	accessToken, err := s.paseto.IssueAccess(claims.AccountID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccountID:    claims.AccountID,
		Role:         claims.Role,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session already expired", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateSignup(email, pass string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !reEmail.MatchString(email) {
		return "", ErrInvalidEmail
	}
	if len(pass) < minPasswordLen {
		return "", ErrPasswordTooShort
	}
	return email, nil
}

func (s *authService) createSession(ctx context.Context, accountID uuid.UUID, role pasetotoken.Role) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, accountID.String(), s.paseto.RefreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(accountID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(accountID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		AccountID:    accountID,
		Role:         role,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}
