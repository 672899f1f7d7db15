package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery containment is strictly tree-shaped: a category owns events, an
// event owns images. An image also carries its category id directly, a
// denormalized shortcut for category cover lookups.

type GalleryCategory struct {
	ID          string    `gorm:"type:uuid;primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Events []GalleryEvent `gorm:"foreignKey:CategoryID" json:"events,omitempty"`
}

func (c *GalleryCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type GalleryEvent struct {
	ID         string    `gorm:"type:uuid;primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID string    `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	Category *GalleryCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []GalleryImage   `gorm:"foreignKey:EventID" json:"images,omitempty"`
}

func (e *GalleryEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type GalleryImage struct {
	ID          string    `gorm:"type:uuid;primarykey" json:"id"`
	ImageURL    string    `gorm:"type:varchar(512);not null" json:"image_url"`
	ImageName   string    `gorm:"type:varchar(255)" json:"image_name"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  string    `gorm:"type:uuid;not null;index" json:"category_id"`
	EventID     string    `gorm:"type:uuid;not null;index" json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`

	Event    *GalleryEvent    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Category *GalleryCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (i *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
