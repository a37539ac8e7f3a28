package auth

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptStore counts failed login attempts in expiring buckets.
type AttemptStore interface {
	Count(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

// LoginThrottle limits failed logins per email within a fixed window.
// Store failures are logged and let the attempt through.
type LoginThrottle struct {
	store       AttemptStore
	maxAttempts int
	window      time.Duration
	logger      *zap.Logger
}

// NewLoginThrottle builds a throttle. A nil store or non-positive limit disables it.
func NewLoginThrottle(store AttemptStore, maxAttempts int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginThrottle{store: store, maxAttempts: maxAttempts, window: window, logger: logger}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.store != nil && t.maxAttempts > 0 && t.window > 0
}

// Allowed reports whether another login attempt may be made for email.
func (t *LoginThrottle) Allowed(ctx context.Context, email string) bool {
	if !t.enabled() {
		return true
	}
	count, err := t.store.Count(ctx, throttleKey(email))
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
		return true
	}
	return count < int64(t.maxAttempts)
}

// Failed records a failed attempt.
func (t *LoginThrottle) Failed(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	if _, err := t.store.Increment(ctx, throttleKey(email), t.window); err != nil {
		t.logger.Warn("record failed login", zap.Error(err))
	}
}

// Succeeded clears the failure counter.
func (t *LoginThrottle) Succeeded(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	if err := t.store.Reset(ctx, throttleKey(email)); err != nil {
		t.logger.Warn("reset failed logins", zap.Error(err))
	}
}

func throttleKey(email string) string {
	return "login:failures:" + strings.ToLower(strings.TrimSpace(email))
}
