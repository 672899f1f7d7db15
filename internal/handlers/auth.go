package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/middleware"
	"github.com/wdpl/corporate-site-api/internal/services"
)

// AuthHandler coordinates the admin authentication HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates credentials, requires an admins row, and initializes
// the session. Valid credentials without an admins row are revoked on the
// spot and never reach the back office.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, admin, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Drop only the auth keys; unrelated session state survives a
		// failed login attempt.
		session := sessions.Default(c)
		session.Delete(constants.ContextKeyUserID)
		session.Delete(constants.ContextKeyAdminEmail)
		session.Delete(constants.SessionKeyIsAdmin)
		_ = session.Save()

		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrNotAdmin):
			apierrors.Forbidden(c, "You are not authorized to access the admin panel")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Set(constants.ContextKeyAdminEmail, user.Email)
	session.Set(constants.SessionKeyIsAdmin, true)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": admin.Email,
		"role":  admin.Role,
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated admin identity.
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetAdminEmail(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": email,
	})
}

// ForgotPassword mails a reset link. The response is the same whether or
// not the address exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	type ForgotRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Please enter your email")
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		apierrors.InternalError(c, "Failed to send reset link")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the address has an account, a reset link has been sent",
	})
}

// ResetPassword sets a new password for the account named by a valid reset
// token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	type ResetRequest struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
		case errors.Is(err, services.ErrInvalidResetToken):
			apierrors.Unauthorized(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated. You can now log in with your new password.",
	})
}
