package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/logger"

	"golang.org/x/oauth2"
)

// CodeExchanger is the part of *oauth2.Config used by the login flow.
type CodeExchanger interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// IDTokenVerifier checks a provider id_token for the given client id.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, raw, audience string) (*auth.GoogleClaims, error)
}

type authUsecase struct {
	oauth    CodeExchanger
	clientID string
	verifier IDTokenVerifier
	sessions *auth.SessionSigner
	allowed  map[string]struct{}
}

func NewAuthUsecase(oauth CodeExchanger, clientID string, verifier IDTokenVerifier, sessions *auth.SessionSigner, allowedEmails []string) domain.AuthUsecase {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		if e = normalizeEmail(e); e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &authUsecase{
		oauth:    oauth,
		clientID: clientID,
		verifier: verifier,
		sessions: sessions,
		allowed:  allowed,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAllowed reports whether email is on the admin allowlist. Comparison ignores case and surrounding space.
func (u *authUsecase) IsAllowed(email string) bool {
	email = normalizeEmail(email)
	if email == "" {
		return false
	}
	_, ok := u.allowed[email]
	return ok
}

func (u *authUsecase) LoginURL(state string) string {
	return u.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (u *authUsecase) CompleteLogin(ctx context.Context, code string) (string, *domain.Session, error) {
	if code == "" {
		return "", nil, apperror.BadRequest("Missing authorization code")
	}

	tok, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Log.Warn("OAuth code exchange failed", "error", err)
		return "", nil, apperror.Unauthorized("Sign-in failed")
	}

	rawID, _ := tok.Extra("id_token").(string)
	claims, err := u.verifier.VerifyIDToken(ctx, rawID, u.clientID)
	if err != nil {
		logger.Log.Warn("id_token verification failed", "error", err)
		return "", nil, apperror.Unauthorized("Sign-in failed")
	}

	if !claims.EmailVerified {
		return "", nil, apperror.Forbidden("Email address is not verified")
	}

	if !u.IsAllowed(claims.Email) {
		logger.Log.Warn("Sign-in rejected by allowlist", "email", claims.Email)
		return "", nil, apperror.Forbidden("Access denied")
	}

	return u.IssueSession(claims.Email, claims.Name)
}

func (u *authUsecase) IssueSession(email, name string) (string, *domain.Session, error) {
	if !u.IsAllowed(email) {
		return "", nil, apperror.Forbidden("Access denied")
	}

	token, expires, err := u.sessions.Sign(email, name)
	if errors.Is(err, auth.ErrNoSecret) {
		return "", nil, apperror.Unavailable("Admin sign-in is not configured", err)
	}
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	logger.Log.Info("Admin session issued", "email", normalizeEmail(email))
	return token, &domain.Session{Email: normalizeEmail(email), Name: name, ExpiresAt: expires}, nil
}

// ParseSession also re-checks the allowlist so removing an address revokes live sessions.
func (u *authUsecase) ParseSession(token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperror.Unauthorized("Authentication required")
	}

	claims, err := u.sessions.Parse(token)
	if errors.Is(err, auth.ErrNoSecret) {
		return nil, apperror.Unavailable("Admin sign-in is not configured", err)
	}
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired session")
	}

	if !u.IsAllowed(claims.Email) {
		return nil, apperror.Forbidden("Access denied")
	}

	return &domain.Session{
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
