package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the signed-in super-admin's identity. It survives restarts via
// the local store and dies only on logout or backend rejection.
type Session struct {
	Token     string
	AdminID   string
	Email     string
	Username  string
	CreatedAt time.Time
}

func (s *Session) Valid() bool {
	return s != nil && strings.TrimSpace(s.Token) != ""
}

// Expired inspects the token's exp claim without verifying the signature.
// Verification belongs to the backend; locally an expiry check just saves a
// doomed round trip at startup. Tokens without an exp claim never expire
// locally.
func (s *Session) Expired(now time.Time) bool {
	if !s.Valid() {
		return true
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		// Opaque tokens pass; the backend is the authority.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
