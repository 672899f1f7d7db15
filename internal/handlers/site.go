package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/repository"
)

// SiteHandler serves static marketing content.
type SiteHandler struct {
	siteRepo repository.SiteRepository
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(siteRepo repository.SiteRepository) *SiteHandler {
	return &SiteHandler{siteRepo: siteRepo}
}

// AboutTimeline returns the company milestones, oldest year first.
func (h *SiteHandler) AboutTimeline(c *gin.Context) {
	items, err := h.siteRepo.ListMilestones()
	if err != nil {
		apierrors.InternalError(c, "Failed to load timeline")
		return
	}
	c.JSON(http.StatusOK, items)
}
