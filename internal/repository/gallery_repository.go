package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

// GormGalleryRepository is a GORM implementation of GalleryRepository
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &GormGalleryRepository{db: db}
}

func (r *GormGalleryRepository) ListCategories() ([]models.GalleryCategory, error) {
	var cats []models.GalleryCategory
	if err := r.db.Order("created_at desc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *GormGalleryRepository) FindCategory(id string) (*models.GalleryCategory, error) {
	var cat models.GalleryCategory
	if err := r.db.Where("id = ?", id).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *GormGalleryRepository) CreateCategory(cat *models.GalleryCategory) error {
	return r.db.Create(cat).Error
}

// DeleteCategory removes the whole subtree's rows. Stored objects are left
// behind; only image row deletion is in scope for a category purge.
func (r *GormGalleryRepository) DeleteCategory(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.GalleryEvent{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.GalleryCategory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormGalleryRepository) ListEvents() ([]models.GalleryEvent, error) {
	var events []models.GalleryEvent
	err := r.db.Preload("Category").Order("created_at desc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormGalleryRepository) ListEventsByCategory(categoryID string) ([]models.GalleryEvent, error) {
	var events []models.GalleryEvent
	err := r.db.Where("category_id = ?", categoryID).
		Order("created_at desc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormGalleryRepository) FindEvent(id string) (*models.GalleryEvent, error) {
	var event models.GalleryEvent
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormGalleryRepository) CreateEvent(event *models.GalleryEvent) error {
	return r.db.Create(event).Error
}

func (r *GormGalleryRepository) DeleteEvent(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.GalleryEvent{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormGalleryRepository) ListImages() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.Preload("Event").Preload("Category").
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormGalleryRepository) ListImagesByEvent(eventID string) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormGalleryRepository) LatestImageByEvent(eventID string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at desc").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GormGalleryRepository) LatestImageByCategory(categoryID string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.db.Where("category_id = ?", categoryID).
		Order("created_at desc").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GormGalleryRepository) FindImage(id string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	if err := r.db.Where("id = ?", id).First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GormGalleryRepository) CreateImage(img *models.GalleryImage) error {
	return r.db.Create(img).Error
}

func (r *GormGalleryRepository) DeleteImage(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.GalleryImage{}).Error
}
