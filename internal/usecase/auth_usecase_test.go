package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type MockExchanger struct {
	mock.Mock
}

func (m *MockExchanger) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return m.Called(state).String(0)
}

func (m *MockExchanger) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyIDToken(ctx context.Context, raw, audience string) (*auth.GoogleClaims, error) {
	args := m.Called(ctx, raw, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleClaims), args.Error(1)
}

func googleToken(idToken string) *oauth2.Token {
	return (&oauth2.Token{AccessToken: "access"}).WithExtra(map[string]interface{}{"id_token": idToken})
}

func TestAuthUsecase_Allowlist(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(MockExchanger), "client-id", new(MockVerifier),
		auth.NewSessionSigner("s", time.Hour), []string{" Owner@Example.com ", ""})

	assert.True(t, uc.IsAllowed("owner@example.com"))
	assert.True(t, uc.IsAllowed("  OWNER@example.COM"))
	assert.False(t, uc.IsAllowed("intruder@example.com"))
	assert.False(t, uc.IsAllowed(""))
}

func TestAuthUsecase_CompleteLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("allowlisted verified email gets a session", func(t *testing.T) {
		ex, v := new(MockExchanger), new(MockVerifier)
		uc := usecase.NewAuthUsecase(ex, "client-id", v, auth.NewSessionSigner("s", time.Hour), []string{"owner@example.com"})
		ex.On("Exchange", ctx, "code-1").Return(googleToken("raw-id"), nil)
		v.On("VerifyIDToken", ctx, "raw-id", "client-id").Return(&auth.GoogleClaims{
			Email: "Owner@example.com", EmailVerified: true, Name: "Owner",
		}, nil)

		token, session, err := uc.CompleteLogin(ctx, "code-1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "owner@example.com", session.Email)

		parsed, err := uc.ParseSession(token)
		require.NoError(t, err)
		assert.Equal(t, "Owner", parsed.Name)
	})

	t.Run("email outside allowlist is forbidden", func(t *testing.T) {
		ex, v := new(MockExchanger), new(MockVerifier)
		uc := usecase.NewAuthUsecase(ex, "client-id", v, auth.NewSessionSigner("s", time.Hour), []string{"owner@example.com"})
		ex.On("Exchange", ctx, "code-2").Return(googleToken("raw-id"), nil)
		v.On("VerifyIDToken", ctx, "raw-id", "client-id").Return(&auth.GoogleClaims{
			Email: "intruder@example.com", EmailVerified: true,
		}, nil)

		_, _, err := uc.CompleteLogin(ctx, "code-2")
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("unverified email is forbidden", func(t *testing.T) {
		ex, v := new(MockExchanger), new(MockVerifier)
		uc := usecase.NewAuthUsecase(ex, "client-id", v, auth.NewSessionSigner("s", time.Hour), []string{"owner@example.com"})
		ex.On("Exchange", ctx, "code-3").Return(googleToken("raw-id"), nil)
		v.On("VerifyIDToken", ctx, "raw-id", "client-id").Return(&auth.GoogleClaims{Email: "owner@example.com"}, nil)

		_, _, err := uc.CompleteLogin(ctx, "code-3")
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("exchange failure is unauthorized", func(t *testing.T) {
		ex, v := new(MockExchanger), new(MockVerifier)
		uc := usecase.NewAuthUsecase(ex, "client-id", v, auth.NewSessionSigner("s", time.Hour), []string{"owner@example.com"})
		ex.On("Exchange", ctx, "bad").Return(nil, errors.New("invalid_grant"))

		_, _, err := uc.CompleteLogin(ctx, "bad")
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
		v.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing code", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockExchanger), "client-id", new(MockVerifier), auth.NewSessionSigner("s", time.Hour), nil)
		_, _, err := uc.CompleteLogin(ctx, "")
		assert.True(t, apperror.Is(err, apperror.KindBadRequest))
	})
}

func TestAuthUsecase_ParseSession(t *testing.T) {
	signer := auth.NewSessionSigner("s", time.Hour)

	t.Run("removed from allowlist", func(t *testing.T) {
		token, _, err := signer.Sign("former@example.com", "")
		require.NoError(t, err)

		uc := usecase.NewAuthUsecase(new(MockExchanger), "client-id", new(MockVerifier), signer, []string{"owner@example.com"})
		_, err = uc.ParseSession(token)
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("empty token", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockExchanger), "client-id", new(MockVerifier), signer, []string{"owner@example.com"})
		_, err := uc.ParseSession("")
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})

	t.Run("no secret configured", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockExchanger), "client-id", new(MockVerifier), auth.NewSessionSigner("", time.Hour), []string{"owner@example.com"})
		_, _, err := uc.IssueSession("owner@example.com", "")
		assert.True(t, apperror.Is(err, apperror.KindUnavailable))
	})
}

func TestAuthUsecase_LoginURL(t *testing.T) {
	ex := new(MockExchanger)
	ex.On("AuthCodeURL", "state-1").Return("https://accounts.google.com/o/oauth2/auth?state=state-1")
	uc := usecase.NewAuthUsecase(ex, "client-id", new(MockVerifier), auth.NewSessionSigner("s", time.Hour), nil)

	assert.Contains(t, uc.LoginURL("state-1"), "state=state-1")
}
