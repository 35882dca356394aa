package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Role identifies which side of the marketplace the account is on.
type Role string

const (
	RoleUser      Role = "user"
	RoleTherapist Role = "therapist"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleTherapist:
		return Role(s), true
	default:
		return "", false
	}
}

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	AccountID uuid.UUID
	Role      Role
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// GetAccountID implements reqctx.AuthClaims.
func (c *Claims) GetAccountID() uuid.UUID {
	return c.AccountID
}

// GetRole implements reqctx.AuthClaims.
func (c *Claims) GetRole() string {
	return string(c.Role)
}

// GetSessionID implements reqctx.AuthClaims.
func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

// GetTokenType implements reqctx.AuthClaims.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired implements reqctx.AuthClaims.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
