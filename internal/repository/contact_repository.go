package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) List() ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	if err := r.db.Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *GormContactRepository) Create(sub *models.ContactSubmission) error {
	return r.db.Create(sub).Error
}

func (r *GormContactRepository) Delete(id string) error {
	tx := r.db.Where("id = ?", id).Delete(&models.ContactSubmission{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
