package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"github.com/wdpl/corporate-site-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrEventFieldsRequired   = errors.New("event name and category are required")
	ErrCategoryNotFound      = errors.New("gallery category not found")
	ErrEventNotFound         = errors.New("gallery event not found")
	ErrImageNotFound         = errors.New("gallery image not found")
	ErrEventCategoryMismatch = errors.New("event does not belong to the category")
)

// GalleryService handles the category → event → image tree and the photo
// uploads behind it.
type GalleryService struct {
	galleryRepo repository.GalleryRepository
	store       storage.ObjectStore
	logger      *zap.Logger
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(galleryRepo repository.GalleryRepository, store storage.ObjectStore, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		store:       store,
		logger:      logger,
	}
}

// CategoryWithCover decorates a category with its read-time cover
// projection.
type CategoryWithCover struct {
	models.GalleryCategory
	CoverURL string `json:"cover_url"`
}

// EventWithCover decorates an event with its read-time cover projection.
type EventWithCover struct {
	models.GalleryEvent
	CoverURL string `json:"cover_url"`
}

// Categories lists categories, each with its cover: the most recently
// created image in the category, or the placeholder when it has none.
func (s *GalleryService) Categories() ([]CategoryWithCover, error) {
	cats, err := s.galleryRepo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]CategoryWithCover, len(cats))
	for i, cat := range cats {
		out[i] = CategoryWithCover{GalleryCategory: cat, CoverURL: s.categoryCover(cat.ID)}
	}
	return out, nil
}

// EventsByCategory lists a category's events newest-first with covers.
func (s *GalleryService) EventsByCategory(categoryID string) ([]EventWithCover, error) {
	events, err := s.galleryRepo.ListEventsByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := make([]EventWithCover, len(events))
	for i, event := range events {
		out[i] = EventWithCover{GalleryEvent: event, CoverURL: s.eventCover(event.ID)}
	}
	return out, nil
}

// eventCover is a best-effort projection: newest created_at wins, no image
// means the placeholder sentinel. Lookup errors degrade to the placeholder
// rather than failing the listing.
func (s *GalleryService) eventCover(eventID string) string {
	img, err := s.galleryRepo.LatestImageByEvent(eventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("cover lookup failed", zap.String("event_id", eventID), zap.Error(err))
		}
		return constants.PlaceholderImageURL
	}
	return img.ImageURL
}

func (s *GalleryService) categoryCover(categoryID string) string {
	img, err := s.galleryRepo.LatestImageByCategory(categoryID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("cover lookup failed", zap.String("category_id", categoryID), zap.Error(err))
		}
		return constants.PlaceholderImageURL
	}
	return img.ImageURL
}

// ImagesByEvent lists an event's images newest-first.
func (s *GalleryService) ImagesByEvent(eventID string) ([]models.GalleryImage, error) {
	if _, err := s.galleryRepo.FindEvent(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	images, err := s.galleryRepo.ListImagesByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

// ListEvents lists every event (admin view).
func (s *GalleryService) ListEvents() ([]models.GalleryEvent, error) {
	return s.galleryRepo.ListEvents()
}

// ListImages lists every image (admin view).
func (s *GalleryService) ListImages() ([]models.GalleryImage, error) {
	return s.galleryRepo.ListImages()
}

// CreateCategory creates a category.
func (s *GalleryService) CreateCategory(name, description string) (*models.GalleryCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	cat := &models.GalleryCategory{Name: name, Description: description}
	if err := s.galleryRepo.CreateCategory(cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return cat, nil
}

// DeleteCategory removes the category subtree's rows.
func (s *GalleryService) DeleteCategory(id string) error {
	if err := s.galleryRepo.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CreateEvent creates an event under an existing category.
func (s *GalleryService) CreateEvent(name, categoryID string) (*models.GalleryEvent, error) {
	name = strings.TrimSpace(name)
	if name == "" || categoryID == "" {
		return nil, ErrEventFieldsRequired
	}
	if _, err := s.galleryRepo.FindCategory(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	event := &models.GalleryEvent{Name: name, CategoryID: categoryID}
	if err := s.galleryRepo.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event and its image rows.
func (s *GalleryService) DeleteEvent(id string) error {
	if err := s.galleryRepo.DeleteEvent(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// FileUpload is one file from a multipart upload form.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FileFailure records why one file of a batch was skipped.
type FileFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchResult is the aggregate outcome of a multi-file upload.
type BatchResult struct {
	Uploaded int           `json:"uploaded"`
	Failed   []FileFailure `json:"failed,omitempty"`
}

// UploadImages runs the two-phase write for each file in turn. A file that
// fails to upload produces no row and does not stop the rest of the batch;
// a row insert that fails after a successful upload leaves the stored
// object orphaned, which is accepted.
func (s *GalleryService) UploadImages(ctx context.Context, categoryID, eventID string, files []FileUpload) (*BatchResult, error) {
	event, err := s.galleryRepo.FindEvent(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	if event.CategoryID != categoryID {
		return nil, ErrEventCategoryMismatch
	}

	result := &BatchResult{}
	for _, file := range files {
		key := storage.ObjectKey("gallery", file.Name)

		url, err := s.store.Upload(ctx, constants.BucketGalleryImages, key, file.Reader, file.Size, file.ContentType)
		if err != nil {
			s.logger.Warn("image upload failed",
				zap.String("file", file.Name),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, FileFailure{Name: file.Name, Reason: err.Error()})
			continue
		}

		img := &models.GalleryImage{
			ImageURL:   url,
			ImageName:  file.Name,
			CategoryID: categoryID,
			EventID:    eventID,
		}
		if err := s.galleryRepo.CreateImage(img); err != nil {
			s.logger.Warn("image row insert failed",
				zap.String("file", file.Name),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, FileFailure{Name: file.Name, Reason: err.Error()})
			continue
		}

		result.Uploaded++
	}

	s.logger.Info("gallery batch upload finished",
		zap.String("event_id", eventID),
		zap.Int("uploaded", result.Uploaded),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

// DeleteImage removes the row, then best-effort removes the stored object.
// A storage failure after the row is gone only produces a warning.
func (s *GalleryService) DeleteImage(ctx context.Context, id string) (warned bool, err error) {
	img, err := s.galleryRepo.FindImage(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrImageNotFound
		}
		return false, fmt.Errorf("failed to find image: %w", err)
	}

	if err := s.galleryRepo.DeleteImage(id); err != nil {
		return false, fmt.Errorf("failed to delete image: %w", err)
	}

	key := storage.KeyFromURL(img.ImageURL, constants.BucketGalleryImages)
	if key == "" {
		return false, nil
	}
	if err := s.store.Remove(ctx, constants.BucketGalleryImages, key); err != nil {
		s.logger.Warn("image removed from DB but not from storage",
			zap.String("key", key),
			zap.Error(err),
		)
		return true, nil
	}
	return false, nil
}
