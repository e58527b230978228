package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	fresh := &Session{Token: signedToken(t, now.Add(time.Hour))}
	if fresh.Expired(now) {
		t.Error("token expiring in an hour should not be expired")
	}

	dead := &Session{Token: signedToken(t, now.Add(-time.Hour))}
	if !dead.Expired(now) {
		t.Error("token expired an hour ago should be expired")
	}
}

func TestExpiredWithoutExpClaim(t *testing.T) {
	s := &Session{Token: signedToken(t, time.Time{})}
	if s.Expired(time.Now()) {
		t.Error("token without exp should not expire locally")
	}
}

func TestExpiredOpaqueToken(t *testing.T) {
	s := &Session{Token: "not-a-jwt"}
	if s.Expired(time.Now()) {
		t.Error("opaque token should be left to the backend")
	}
}

func TestExpiredEmptySession(t *testing.T) {
	if !(&Session{}).Expired(time.Now()) {
		t.Error("empty session should read as expired")
	}
	var nilSession *Session
	if !nilSession.Expired(time.Now()) {
		t.Error("nil session should read as expired")
	}
	if nilSession.Valid() {
		t.Error("nil session should not be valid")
	}
}
