package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"gorm.io/gorm"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	contactRepo repository.ContactRepository
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactRepo repository.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// Submit records a public contact form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	type ContactRequest struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name, email and message are required")
		return
	}

	sub := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if err := h.contactRepo.Create(&sub); err != nil {
		apierrors.InternalError(c, "Failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for reaching out! We'll get back to you soon.",
	})
}

// List returns submissions newest-first for the admin inbox.
func (h *ContactHandler) List(c *gin.Context) {
	subs, err := h.contactRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to load contact submissions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Delete removes a submission.
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		apierrors.BadRequest(c, "Invalid submission ID")
		return
	}

	if err := h.contactRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Submission not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted successfully"})
}
