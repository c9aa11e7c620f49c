package v1

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	stateCookie    = "oauth_state"
	stateCookieTTL = 10 * 60
)

// SignInGuard blocks clients that keep failing the OAuth callback.
type SignInGuard interface {
	IsBlocked(ctx context.Context, ip string) (bool, error)
	RecordFailure(ctx context.Context, ip, reason string) (bool, error)
	Clear(ctx context.Context, ip string) error
}

type AuthHandler struct {
	authUC domain.AuthUsecase
	guard  SignInGuard
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, guard SignInGuard, cfg *config.Config, limit gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		guard:  guard,
		config: cfg,
	}

	publicAuth := public.Group("/auth", limit)
	{
		publicAuth.GET("/login", handler.Login)
		publicAuth.GET("/callback", handler.Callback)
		publicAuth.POST("/logout", handler.Logout)
	}

	protected.GET("/auth/session", handler.Session)
}

// Login godoc
// @Summary      Start Google sign-in
// @Description  Redirects to Google's consent page. Only allowlisted emails can finish sign-in.
// @Tags         auth
// @Success      302
// @Router       /auth/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	h.setCookie(c, stateCookie, state, stateCookieTTL)
	c.Redirect(http.StatusFound, h.authUC.LoginURL(state))
}

// Callback godoc
// @Summary      Google OAuth callback
// @Description  Exchanges the code, checks the allowlist and sets the session_token cookie.
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "State issued by /auth/login"
// @Success      302
// @Failure      400  {object}  response.ErrorBody
// @Failure      429  {object}  response.ErrorBody
// @Router       /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	ip := c.ClientIP()

	blocked, err := h.guard.IsBlocked(ctx, ip)
	if err != nil {
		logger.Log.Warn("Sign-in block check failed", "error", err)
	}
	if blocked {
		c.Error(apperror.TooManyRequests("Too many failed sign-in attempts. Please try again later."))
		return
	}

	if providerErr := c.Query("error"); providerErr != "" {
		h.redirectToLogin(c, "Callback")
		return
	}

	state, err := c.Cookie(stateCookie)
	h.setCookie(c, stateCookie, "", -1)
	if err != nil || state == "" || state != c.Query("state") {
		c.Error(apperror.BadRequest("Invalid OAuth state"))
		return
	}

	token, session, err := h.authUC.CompleteLogin(ctx, c.Query("code"))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && (appErr.Kind == apperror.KindForbidden || appErr.Kind == apperror.KindUnauthorized) {
			if _, trackErr := h.guard.RecordFailure(ctx, ip, string(appErr.Kind)); trackErr != nil {
				logger.Log.Warn("Failed to record sign-in failure", "error", trackErr)
			}
		}
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindForbidden {
			h.redirectToLogin(c, "AccessDenied")
			return
		}
		c.Error(err)
		return
	}

	if err := h.guard.Clear(ctx, ip); err != nil {
		logger.Log.Warn("Failed to clear sign-in failures", "error", err)
	}

	h.setCookie(c, middleware.SessionCookie, token, h.config.SessionTTLHours*3600)
	logger.Log.Info("Admin signed in", "email", session.Email)
	c.Redirect(http.StatusFound, h.config.AdminRedirectURL)
}

// Logout godoc
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageBody
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.SessionCookie, "", -1)
	response.Message(c, http.StatusOK, "Signed out")
}

// Session godoc
// @Summary      Current admin session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /auth/session [get]
// @Security     BearerAuth
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := c.Get(string(domain.KeySession))
	if !ok {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	response.Success(c, http.StatusOK, session)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.config.GinMode == gin.ReleaseMode || c.Request.TLS != nil
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

func (h *AuthHandler) redirectToLogin(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(reason))
}
