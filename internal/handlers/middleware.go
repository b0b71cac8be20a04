package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant_pos/internal/redis"
	"restaurant_pos/internal/services"
)

// SessionCookieName is the http-only cookie carrying the session token.
const SessionCookieName = "pos_session_token"

// SessionStore is what the middleware needs from the Redis client.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

// CORS mirrors the permissive development policy of the frontend dev server.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthRequired resolves the session cookie against the session store and puts
// the caller identity on the context. No role check happens here.
func AuthRequired(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := sessions.GetSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set("identity", session)
		c.Set("session_token", token)
		c.Next()
	}
}

// RequireRole resolves the caller's profile (creating a default cashier
// profile on first sighting) and gates the request on the allowed roles.
func RequireRole(userService services.UserService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentIdentity(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		profile, err := userService.GetOrCreateProfile(session.UserID, session.Email, session.Name)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err := services.AuthorizeRole(profile.Role, roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("profile", profile)
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller set by AuthRequired, or
// nil when the request is unauthenticated.
func CurrentIdentity(c *gin.Context) *redis.SessionData {
	v, ok := c.Get("identity")
	if !ok {
		return nil
	}
	session, _ := v.(*redis.SessionData)
	return session
}
