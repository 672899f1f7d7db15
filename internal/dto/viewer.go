package dto

import (
	"github.com/wdpl/corporate-site-api/internal/lightbox"
	"github.com/wdpl/corporate-site-api/internal/models"
)

// ViewerImageDTO is one slide of the gallery viewer.
type ViewerImageDTO struct {
	ID          string `json:"id"`
	ImageURL    string `json:"image_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ViewerStateDTO is returned by every viewer operation: the lightbox state
// plus the image the cursor points at.
type ViewerStateDTO struct {
	EventID string            `json:"event_id"`
	State   lightbox.Lightbox `json:"state"`
	Current *ViewerImageDTO   `json:"current,omitempty"`
	Images  []ViewerImageDTO  `json:"images,omitempty"`
}

// ToViewerImageDTO converts an image row into a slide.
func ToViewerImageDTO(img models.GalleryImage) ViewerImageDTO {
	return ViewerImageDTO{
		ID:          img.ID,
		ImageURL:    img.ImageURL,
		Title:       img.Title,
		Description: img.Description,
	}
}

// ToViewerImageDTOs converts a list of image rows into slides.
func ToViewerImageDTOs(images []models.GalleryImage) []ViewerImageDTO {
	out := make([]ViewerImageDTO, len(images))
	for i, img := range images {
		out[i] = ToViewerImageDTO(img)
	}
	return out
}
