package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"github.com/wdpl/corporate-site-api/internal/storage"
	"gorm.io/gorm"
)

// TestimonialHandler serves the public testimonials and the admin panel.
type TestimonialHandler struct {
	testimonialRepo repository.TestimonialRepository
	store           storage.ObjectStore
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(testimonialRepo repository.TestimonialRepository, store storage.ObjectStore) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialRepo: testimonialRepo,
		store:           store,
	}
}

// List returns testimonials newest-first.
func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.testimonialRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, items)
}

// testimonialFromForm reads the multipart form and runs the photo upload
// when a file is attached. Rating must be 1..5; all text fields are
// required. Returns ok=false after responding.
func (h *TestimonialHandler) testimonialFromForm(c *gin.Context) (models.Testimonial, bool) {
	var t models.Testimonial
	t.Name = c.PostForm("name")
	t.Role = c.PostForm("role")
	t.Content = c.PostForm("content")

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		apierrors.BadRequest(c, "All fields are required")
		return t, false
	}
	t.Rating = rating

	if t.Name == "" || t.Role == "" || t.Content == "" {
		apierrors.BadRequest(c, "All fields are required")
		return t, false
	}
	if t.Rating < 1 || t.Rating > 5 {
		apierrors.BadRequest(c, "Rating must be between 1 and 5")
		return t, false
	}

	file, err := c.FormFile("image")
	if err == nil {
		src, err := file.Open()
		if err != nil {
			apierrors.InternalError(c, "Failed to read uploaded photo")
			return t, false
		}
		defer src.Close()

		key := storage.ObjectKey("testimonials", file.Filename)
		url, err := h.store.Upload(context.Background(), constants.BucketTestimonialPhotos, key,
			src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			apierrors.InternalError(c, "Failed to upload photo")
			return t, false
		}
		t.ImageURL = url
	}

	return t, true
}

// Create adds a testimonial.
func (h *TestimonialHandler) Create(c *gin.Context) {
	t, ok := h.testimonialFromForm(c)
	if !ok {
		return
	}

	if err := h.testimonialRepo.Create(&t); err != nil {
		apierrors.InternalError(c, "Failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Update rewrites a testimonial.
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid testimonial ID")
		return
	}

	existing, err := h.testimonialRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Testimonial not found")
			return
		}
		apierrors.InternalError(c, "Failed to load testimonial")
		return
	}

	t, ok := h.testimonialFromForm(c)
	if !ok {
		return
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	if t.ImageURL == "" {
		t.ImageURL = existing.ImageURL
	}
	if err := h.testimonialRepo.Update(&t); err != nil {
		apierrors.InternalError(c, "Failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete removes a testimonial.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid testimonial ID")
		return
	}

	if err := h.testimonialRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Testimonial not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
