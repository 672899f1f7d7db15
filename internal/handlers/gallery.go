package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/dto"
	apierrors "github.com/wdpl/corporate-site-api/internal/errors"
	"github.com/wdpl/corporate-site-api/internal/lightbox"
	"github.com/wdpl/corporate-site-api/internal/services"
)

// GalleryHandler serves the public gallery tree, the session-backed image
// viewer, and the admin gallery panel.
type GalleryHandler struct {
	galleryService *services.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryService *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func respondGalleryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNameRequired),
		errors.Is(err, services.ErrEventFieldsRequired),
		errors.Is(err, services.ErrEventCategoryMismatch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrImageNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// ListCategories returns categories with their cover images.
func (h *GalleryHandler) ListCategories(c *gin.Context) {
	cats, err := h.galleryService.Categories()
	if err != nil {
		apierrors.InternalError(c, "Failed to load gallery categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// ListCategoryEvents returns a category's events with their cover images.
func (h *GalleryHandler) ListCategoryEvents(c *gin.Context) {
	events, err := h.galleryService.EventsByCategory(c.Param("id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to load gallery events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListEventImages returns an event's images newest-first.
func (h *GalleryHandler) ListEventImages(c *gin.Context) {
	images, err := h.galleryService.ImagesByEvent(c.Param("id"))
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// viewerSession is the serialized viewer state held in the session. The
// image list itself is reloaded per request; only the cursor survives.
type viewerSession struct {
	EventID string            `json:"event_id"`
	State   lightbox.Lightbox `json:"state"`
}

// respondViewerError maps lightbox errors: a viewer with no images is a
// conflict with its current state, a bad index is the caller's fault.
func respondViewerError(c *gin.Context, err error) {
	if errors.Is(err, lightbox.ErrNoImages) {
		apierrors.Conflict(c, err.Error())
		return
	}
	apierrors.BadRequest(c, err.Error())
}

func loadViewer(c *gin.Context) (viewerSession, bool) {
	session := sessions.Default(c)
	raw, ok := session.Get(constants.SessionKeyViewer).(string)
	if !ok || raw == "" {
		apierrors.NotFound(c, "No gallery viewer session")
		return viewerSession{}, false
	}
	var vs viewerSession
	if err := json.Unmarshal([]byte(raw), &vs); err != nil {
		apierrors.InternalError(c, "Corrupt viewer session")
		return viewerSession{}, false
	}
	return vs, true
}

func saveViewer(c *gin.Context, vs viewerSession) bool {
	raw, err := json.Marshal(vs)
	if err != nil {
		apierrors.InternalError(c, "Failed to save viewer session")
		return false
	}
	session := sessions.Default(c)
	session.Set(constants.SessionKeyViewer, string(raw))
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save viewer session")
		return false
	}
	return true
}

// respondViewer rebuilds the slide list for the event so the response can
// carry the image the cursor points at.
func (h *GalleryHandler) respondViewer(c *gin.Context, vs viewerSession, includeImages bool) {
	images, err := h.galleryService.ImagesByEvent(vs.EventID)
	if err != nil {
		respondGalleryError(c, err)
		return
	}

	out := dto.ViewerStateDTO{EventID: vs.EventID, State: vs.State}
	slides := dto.ToViewerImageDTOs(images)
	if includeImages {
		out.Images = slides
	}
	if vs.State.Open && vs.State.Index >= 0 && vs.State.Index < len(slides) {
		out.Current = &slides[vs.State.Index]
	}
	c.JSON(http.StatusOK, out)
}

// OpenViewer loads an event's images into a fresh viewer session.
func (h *GalleryHandler) OpenViewer(c *gin.Context) {
	type OpenViewerRequest struct {
		EventID string `json:"event_id" binding:"required"`
	}

	var req OpenViewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Event ID is required")
		return
	}

	images, err := h.galleryService.ImagesByEvent(req.EventID)
	if err != nil {
		respondGalleryError(c, err)
		return
	}

	vs := viewerSession{EventID: req.EventID, State: lightbox.New(len(images))}
	if !saveViewer(c, vs) {
		return
	}
	h.respondViewer(c, vs, true)
}

// CloseViewer discards the viewer session.
func (h *GalleryHandler) CloseViewer(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(constants.SessionKeyViewer)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save viewer session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Viewer closed"})
}

// ViewerOpenImage opens the lightbox on the image at the given index.
func (h *GalleryHandler) ViewerOpenImage(c *gin.Context) {
	type OpenImageRequest struct {
		Index *int `json:"index" binding:"required"`
	}

	var req OpenImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Image index is required")
		return
	}

	vs, ok := loadViewer(c)
	if !ok {
		return
	}
	if err := vs.State.OpenAt(*req.Index); err != nil {
		respondViewerError(c, err)
		return
	}
	if !saveViewer(c, vs) {
		return
	}
	h.respondViewer(c, vs, false)
}

// mutateViewer runs one lightbox transition against the stored state.
func (h *GalleryHandler) mutateViewer(c *gin.Context, fn func(*lightbox.Lightbox) error) {
	vs, ok := loadViewer(c)
	if !ok {
		return
	}
	if err := fn(&vs.State); err != nil {
		respondViewerError(c, err)
		return
	}
	if !saveViewer(c, vs) {
		return
	}
	h.respondViewer(c, vs, false)
}

// ViewerNext advances to the next image, wrapping past the end.
func (h *GalleryHandler) ViewerNext(c *gin.Context) {
	h.mutateViewer(c, (*lightbox.Lightbox).Next)
}

// ViewerPrev retreats to the previous image, wrapping past the start.
func (h *GalleryHandler) ViewerPrev(c *gin.Context) {
	h.mutateViewer(c, (*lightbox.Lightbox).Prev)
}

// ViewerZoomIn raises the zoom one step.
func (h *GalleryHandler) ViewerZoomIn(c *gin.Context) {
	h.mutateViewer(c, func(l *lightbox.Lightbox) error {
		l.ZoomIn()
		return nil
	})
}

// ViewerZoomOut lowers the zoom one step.
func (h *GalleryHandler) ViewerZoomOut(c *gin.Context) {
	h.mutateViewer(c, func(l *lightbox.Lightbox) error {
		l.ZoomOut()
		return nil
	})
}

// ViewerZoomReset restores the default zoom.
func (h *GalleryHandler) ViewerZoomReset(c *gin.Context) {
	h.mutateViewer(c, func(l *lightbox.Lightbox) error {
		l.ResetZoom()
		return nil
	})
}

// ViewerCloseImage closes the lightbox but keeps the viewer session.
func (h *GalleryHandler) ViewerCloseImage(c *gin.Context) {
	h.mutateViewer(c, func(l *lightbox.Lightbox) error {
		l.Close()
		return nil
	})
}

// CreateCategory adds a gallery category.
func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	type CreateCategoryRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Category name is required")
		return
	}

	cat, err := h.galleryService.CreateCategory(req.Name, req.Description)
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// DeleteCategory removes a category subtree.
func (h *GalleryHandler) DeleteCategory(c *gin.Context) {
	if err := h.galleryService.DeleteCategory(c.Param("id")); err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ListEvents returns every event for the admin panel.
func (h *GalleryHandler) ListEvents(c *gin.Context) {
	events, err := h.galleryService.ListEvents()
	if err != nil {
		apierrors.InternalError(c, "Failed to load gallery events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent adds an event under a category.
func (h *GalleryHandler) CreateEvent(c *gin.Context) {
	type CreateEventRequest struct {
		Name       string `json:"name" binding:"required"`
		CategoryID string `json:"category_id" binding:"required"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Event name and category are required")
		return
	}

	event, err := h.galleryService.CreateEvent(req.Name, req.CategoryID)
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// DeleteEvent removes an event and its image rows.
func (h *GalleryHandler) DeleteEvent(c *gin.Context) {
	if err := h.galleryService.DeleteEvent(c.Param("id")); err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// ListImages returns every image for the admin panel.
func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.galleryService.ListImages()
	if err != nil {
		apierrors.InternalError(c, "Failed to load gallery images")
		return
	}
	c.JSON(http.StatusOK, images)
}

// UploadImages handles the multi-file upload form. Files that fail are
// reported per-file; the rest of the batch still lands.
func (h *GalleryHandler) UploadImages(c *gin.Context) {
	categoryID := c.PostForm("category_id")
	eventID := c.PostForm("event_id")
	if categoryID == "" || eventID == "" {
		apierrors.BadRequest(c, "Category and event are required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apierrors.BadRequest(c, "Invalid upload form")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		apierrors.BadRequest(c, "At least one image is required")
		return
	}

	uploads := make([]services.FileUpload, 0, len(files))
	closers := make([]func() error, 0, len(files))
	defer func() {
		for _, close := range closers {
			close()
		}
	}()
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			apierrors.InternalError(c, "Failed to read uploaded images")
			return
		}
		closers = append(closers, src.Close)
		uploads = append(uploads, services.FileUpload{
			Name:        file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Reader:      src,
		})
	}

	result, err := h.galleryService.UploadImages(context.Background(), categoryID, eventID, uploads)
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteImage removes an image row and its stored object.
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	warned, err := h.galleryService.DeleteImage(context.Background(), c.Param("id"))
	if err != nil {
		respondGalleryError(c, err)
		return
	}

	msg := "Image deleted successfully"
	if warned {
		msg = "Image deleted; stored file could not be removed"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
