package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/dto"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"github.com/wdpl/corporate-site-api/internal/storage"
	"gorm.io/gorm"
)

// JobHandler serves the careers page and the admin job panel.
type JobHandler struct {
	jobRepo repository.JobRepository
	store   storage.ObjectStore
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobRepo repository.JobRepository, store storage.ObjectStore) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
		store:   store,
	}
}

// ListOpen returns open postings newest-created-first; closed postings
// never appear here.
func (h *JobHandler) ListOpen(c *gin.Context) {
	jobs, err := h.jobRepo.ListOpen()
	if err != nil {
		apierrors.InternalError(c, "Failed to load job postings")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns one posting for the apply page.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Job posting not found")
			return
		}
		apierrors.InternalError(c, "Failed to load job posting")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Apply records a candidate submission. The resume is uploaded first; a
// failed upload aborts before the row write.
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Job posting not found")
			return
		}
		apierrors.InternalError(c, "Failed to load job posting")
		return
	}
	if job.Status != models.JobStatusOpen {
		apierrors.Conflict(c, "This position is no longer open")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	if name == "" || email == "" || phone == "" {
		apierrors.BadRequest(c, "Name, email and phone are required")
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		apierrors.BadRequest(c, "Resume file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read resume")
		return
	}
	defer src.Close()

	key := storage.ObjectKey("resumes", file.Filename)
	url, err := h.store.Upload(context.Background(), constants.BucketResumes, key,
		src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		apierrors.InternalError(c, "Failed to upload resume")
		return
	}

	app := models.Application{
		Name:      name,
		Email:     email,
		Phone:     phone,
		ResumeURL: url,
		JobID:     job.ID,
	}
	if err := h.jobRepo.CreateApplication(&app); err != nil {
		apierrors.InternalError(c, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"id":      app.ID,
	})
}

// ListAll returns every posting for the admin panel, list fields joined
// back into form text.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobRepo.ListAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to load job postings")
		return
	}

	out := make([]dto.JobFormDTO, len(jobs))
	for i, job := range jobs {
		out[i] = dto.ToJobFormDTO(job)
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a posting; it starts open.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Job title is required")
		return
	}

	job := req.ToJobPosting()
	job.Status = models.JobStatusOpen
	if err := h.jobRepo.Create(&job); err != nil {
		apierrors.InternalError(c, "Failed to create job posting")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update rewrites a posting's fields, keeping its status.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	existing, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Job posting not found")
			return
		}
		apierrors.InternalError(c, "Failed to load job posting")
		return
	}

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Job title is required")
		return
	}

	job := req.ToJobPosting()
	job.ID = existing.ID
	job.Status = existing.Status
	job.CreatedAt = existing.CreatedAt
	if err := h.jobRepo.Update(&job); err != nil {
		apierrors.InternalError(c, "Failed to update job posting")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ToggleStatus flips the posting between open and closed.
func (h *JobHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Job posting not found")
			return
		}
		apierrors.InternalError(c, "Failed to load job posting")
		return
	}

	next := job.Status.Toggle()
	if err := h.jobRepo.SetStatus(id, next); err != nil {
		apierrors.InternalError(c, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}

// Delete removes a posting.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Job posting not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete job posting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted successfully"})
}
