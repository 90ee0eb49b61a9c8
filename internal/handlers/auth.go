package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alimgiray/folio/internal/middleware"
	"github.com/alimgiray/folio/internal/services"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	githubService *services.GitHubService
}

func NewAuthHandler(githubService *services.GitHubService) *AuthHandler {
	return &AuthHandler{
		githubService: githubService,
	}
}

// Login handles the login page
func (h *AuthHandler) Login(c *gin.Context) {
	data := gin.H{
		"Title":   "Sign in",
		"User":    middleware.GetSession(c),
		"Error":   c.Query("error"),
		"Enabled": h.githubService.Enabled(),
		"Year":    time.Now().Year(),
	}

	c.HTML(http.StatusOK, "login", data)
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// GitHubLogin initiates GitHub OAuth flow
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	if !h.githubService.Enabled() {
		c.Redirect(http.StatusFound, "/login?error=oauth_disabled")
		return
	}

	state, err := h.githubService.NewState()
	if err != nil {
		logger.WithError(err).Error("Failed to generate OAuth state")
		c.Redirect(http.StatusFound, "/login?error=state_failed")
		return
	}

	middleware.SetOAuthState(c, state)
	c.Redirect(http.StatusTemporaryRedirect, h.githubService.GetAuthURL(state))
}

// GitHubCallback handles GitHub OAuth callback
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	if !middleware.ConsumeOAuthState(c, c.Query("state")) {
		c.Redirect(http.StatusFound, "/login?error=invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login?error=no_code")
		return
	}

	token, err := h.githubService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.WithError(err).Warn("OAuth token exchange failed")
		c.Redirect(http.StatusFound, "/login?error=token_exchange_failed")
		return
	}

	owner, err := h.githubService.GetOwner(c.Request.Context(), token)
	if errors.Is(err, services.ErrNotOwner) {
		c.Redirect(http.StatusFound, "/login?error=not_owner")
		return
	}
	if err != nil {
		logger.WithError(err).Warn("Failed to load GitHub user")
		c.Redirect(http.StatusFound, "/login?error=user_info_failed")
		return
	}

	if err := middleware.SetSession(c, owner); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session_creation_failed")
		return
	}

	c.Redirect(http.StatusFound, "/admin/inbox")
}
