package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant_pos/internal/redis"
	"restaurant_pos/internal/services"
	"restaurant_pos/pkg/identity"
)

// IdentityClient is the slice of pkg/identity used by the auth flow.
type IdentityClient interface {
	GetOAuthRedirectURL(provider string) (string, error)
	ExchangeCodeForToken(code string) (string, error)
	GetUser(sessionToken string) (*identity.User, error)
	DeleteSession(sessionToken string) error
}

type AuthHandler struct {
	identityClient IdentityClient
	sessions       SessionStore
	userService    services.UserService
	sessionTTL     time.Duration
	cookieSecure   bool
}

func NewAuthHandler(
	identityClient IdentityClient,
	sessions SessionStore,
	userService services.UserService,
	sessionTTL time.Duration,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		identityClient: identityClient,
		sessions:       sessions,
		userService:    userService,
		sessionTTL:     sessionTTL,
		cookieSecure:   cookieSecure,
	}
}

func (h *AuthHandler) GetOAuthRedirectURL(c *gin.Context) {
	redirectURL, err := h.identityClient.GetOAuthRedirectURL("google")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectUrl": redirectURL})
}

// CreateSession exchanges the OAuth code at the identity service, resolves
// the identity behind it and mints a local session cookie.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identityToken, err := h.identityClient.ExchangeCodeForToken(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.identityClient.GetUser(identityToken)
	if err != nil {
		respondError(c, err)
		return
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:        user.ID,
		Email:         user.Email,
		Name:          user.Name,
		IdentityToken: identityToken,
		CreatedAt:     time.Now(),
	}
	if err := h.sessions.SetSession(token, session, h.sessionTTL); err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.sessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout revokes the upstream identity session (best effort) and drops the
// local one.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err == nil && token != "" {
		if session, err := h.sessions.GetSession(token); err == nil {
			if err := h.identityClient.DeleteSession(session.IdentityToken); err != nil {
				log.Printf("Warning: failed to revoke identity session: %v", err)
			}
		}
		if err := h.sessions.DeleteSession(token); err != nil {
			log.Printf("Warning: failed to delete session: %v", err)
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetMe returns the caller identity together with the local profile, which
// is created with the default cashier role on first call.
func (h *AuthHandler) GetMe(c *gin.Context) {
	session := CurrentIdentity(c)

	profile, err := h.userService.GetOrCreateProfile(session.UserID, session.Email, session.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      session.UserID,
		"email":   session.Email,
		"name":    session.Name,
		"profile": profile,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", h.cookieSecure, true)
}
