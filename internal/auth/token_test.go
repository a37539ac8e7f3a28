package auth

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 24*time.Hour)
	token, exp, err := tm.GenerateToken("staff-1", "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if d := time.Until(exp); d < 23*time.Hour || d > 25*time.Hour {
		t.Fatalf("unexpected expiry %s", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.StaffID != "staff-1" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	p := claims.Principal()
	if p.StaffID != "staff-1" || p.Email != "ada@example.com" {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("one", time.Hour).GenerateToken("staff-1", "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := NewTokenManager("two", time.Hour).ParseToken(token); err == nil {
		t.Fatalf("expected signature failure")
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := tm.GenerateToken("staff-1", "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	if tm := NewTokenManager("s", 0); tm.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default, got %s", tm.ttl)
	}
}
