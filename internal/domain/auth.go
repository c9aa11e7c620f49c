package domain

import (
	"context"
	"time"
)

// Session is the authenticated admin identity carried by a session token.
type Session struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthUsecase interface {
	// LoginURL returns the provider consent URL bound to state.
	LoginURL(state string) string
	// CompleteLogin exchanges an authorization code and returns a signed session token.
	CompleteLogin(ctx context.Context, code string) (string, *Session, error)
	// IssueSession signs a session token for an allowlisted email.
	IssueSession(email, name string) (string, *Session, error)
	// ParseSession validates a session token and re-checks the allowlist.
	ParseSession(token string) (*Session, error)
	IsAllowed(email string) bool
}
