package repository

import (
	"errors"
	"fmt"

	"github.com/wdpl/corporate-site-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrReplaceSkills is returned when the skill replacement step of a
	// member update fails inside the transaction.
	ErrReplaceSkills = errors.New("team repository: replace skills failed")
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

func (r *GormTeamRepository) ListDepartments(activeOnly bool) ([]models.Department, error) {
	q := r.db.Order("name asc")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var deps []models.Department
	if err := q.Find(&deps).Error; err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *GormTeamRepository) CreateDepartment(dep *models.Department) error {
	return r.db.Create(dep).Error
}

func (r *GormTeamRepository) SetDepartmentActive(id uint64, active bool) error {
	return r.db.Model(&models.Department{}).
		Where("id = ?", id).
		Update("active", active).Error
}

func (r *GormTeamRepository) ListMembers(activeOnly bool) ([]models.TeamMember, error) {
	q := r.db.Preload("Skills").Preload("Department").Order("id asc")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var members []models.TeamMember
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormTeamRepository) FindMember(id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Preload("Skills").Preload("Department").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *GormTeamRepository) CreateMember(member *models.TeamMember, skills []models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		for i := range skills {
			skills[i].TeamMemberID = member.ID
		}
		if len(skills) > 0 {
			if err := tx.Create(&skills).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrReplaceSkills, err)
			}
		}
		return nil
	})
}

// UpdateMember replaces the full skill set rather than diffing it; the
// admin form always submits the complete list.
func (r *GormTeamRepository) UpdateMember(member *models.TeamMember, skills []models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TeamMember{}).
			Where("id = ?", member.ID).
			Updates(map[string]interface{}{
				"name":          member.Name,
				"role":          member.Role,
				"department_id": member.DepartmentID,
				"location":      member.Location,
				"description":   member.Description,
				"linkedin_url":  member.LinkedinURL,
				"image_url":     member.ImageURL,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_member_id = ?", member.ID).Delete(&models.Skill{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrReplaceSkills, err)
		}
		for i := range skills {
			skills[i].ID = 0
			skills[i].TeamMemberID = member.ID
		}
		if len(skills) > 0 {
			if err := tx.Create(&skills).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrReplaceSkills, err)
			}
		}
		return nil
	})
}

func (r *GormTeamRepository) SetMemberActive(id uint64, active bool) error {
	return r.db.Model(&models.TeamMember{}).
		Where("id = ?", id).
		Update("active", active).Error
}

// DeleteMember removes skill rows before the member row; the store is not
// assumed to cascade.
func (r *GormTeamRepository) DeleteMember(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_member_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TeamMember{}, id).Error
	})
}

func (r *GormTeamRepository) ListSkills(memberID uint64) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Where("team_member_id = ?", memberID).Order("id asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
