package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/services"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if email := session.Get(constants.ContextKeyAdminEmail); email != nil {
			c.Set(constants.ContextKeyAdminEmail, email)
		}
		c.Next()
	}
}

// RequireAdmin gates the back office. The session's is_admin value is only
// a hint; the admins table is re-checked on every request, and any failure
// during the check denies access.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		isAdmin, _ := session.Get(constants.SessionKeyIsAdmin).(bool)
		email, _ := c.Get(constants.ContextKeyAdminEmail)
		emailStr, _ := email.(string)

		if !isAdmin || emailStr == "" {
			apierrors.Unauthorized(c, "Admin session required")
			c.Abort()
			return
		}

		ok, err := authService.IsAdmin(emailStr)
		if err != nil || !ok {
			// Revoke the session; a partially-authorized admin UI is
			// never rendered.
			session.Clear()
			_ = session.Save()
			apierrors.Forbidden(c, "You are not authorized to access the admin panel")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetAdminEmail retrieves the signed-in admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyAdminEmail)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok && s != ""
}
