package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

func (r *GormJobRepository) ListOpen() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.Where("status = ?", models.JobStatusOpen).
		Order("created_at desc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) ListAll() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := r.db.Order("id desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) FindByID(id uint64) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *GormJobRepository) Update(job *models.JobPosting) error {
	return r.db.Save(job).Error
}

func (r *GormJobRepository) SetStatus(id uint64, status models.JobStatus) error {
	return r.db.Model(&models.JobPosting{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormJobRepository) Delete(id uint64) error {
	tx := r.db.Delete(&models.JobPosting{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormJobRepository) CreateApplication(app *models.Application) error {
	return r.db.Create(app).Error
}
