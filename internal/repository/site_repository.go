package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

// GormSiteRepository is a GORM implementation of SiteRepository
type GormSiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new SiteRepository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &GormSiteRepository{db: db}
}

func (r *GormSiteRepository) ListMilestones() ([]models.AboutMilestone, error) {
	var items []models.AboutMilestone
	if err := r.db.Order("year asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
