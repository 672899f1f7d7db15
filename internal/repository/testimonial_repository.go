package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

// GormTestimonialRepository is a GORM implementation of TestimonialRepository
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

func (r *GormTestimonialRepository) List() ([]models.Testimonial, error) {
	var items []models.Testimonial
	if err := r.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormTestimonialRepository) FindByID(id uint64) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTestimonialRepository) Create(t *models.Testimonial) error {
	return r.db.Create(t).Error
}

func (r *GormTestimonialRepository) Update(t *models.Testimonial) error {
	return r.db.Save(t).Error
}

func (r *GormTestimonialRepository) Delete(id uint64) error {
	tx := r.db.Delete(&models.Testimonial{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
