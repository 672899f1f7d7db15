package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMemberNameRequired     = errors.New("member name is required")
	ErrSkillNameRequired      = errors.New("skill name is required")
	ErrSkillPercentageRange   = errors.New("skill percentage must be between 0 and 100")
	ErrMemberNotFound         = errors.New("team member not found")
	ErrDepartmentNameRequired = errors.New("department name is required")
)

// TeamService handles the team roster business logic.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// SkillInput is one skill on the member form.
type SkillInput struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// MemberInput holds the member form fields.
type MemberInput struct {
	Name         string
	Role         string
	DepartmentID *uint64
	Location     string
	Description  string
	LinkedinURL  string
	ImageURL     string
	Skills       []SkillInput
}

func validateMemberInput(input MemberInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrMemberNameRequired
	}
	for _, s := range input.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return ErrSkillNameRequired
		}
		// 0 and 100 are both valid.
		if s.Percentage < 0 || s.Percentage > 100 {
			return ErrSkillPercentageRange
		}
	}
	return nil
}

func skillRows(inputs []SkillInput) []models.Skill {
	skills := make([]models.Skill, len(inputs))
	for i, s := range inputs {
		skills[i] = models.Skill{
			Name:       strings.TrimSpace(s.Name),
			Percentage: s.Percentage,
		}
	}
	return skills
}

// ListMembers lists the roster, restricted to active members for the
// public site.
func (s *TeamService) ListMembers(activeOnly bool) ([]models.TeamMember, error) {
	return s.teamRepo.ListMembers(activeOnly)
}

// CreateMember validates the form and creates the member with its skills.
func (s *TeamService) CreateMember(input MemberInput) (*models.TeamMember, error) {
	if err := validateMemberInput(input); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		Name:         strings.TrimSpace(input.Name),
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Location:     input.Location,
		Description:  input.Description,
		LinkedinURL:  input.LinkedinURL,
		ImageURL:     input.ImageURL,
		Active:       true,
	}

	if err := s.teamRepo.CreateMember(member, skillRows(input.Skills)); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return s.teamRepo.FindMember(member.ID)
}

// UpdateMember validates the form, updates the member, and replaces the
// full skill set.
func (s *TeamService) UpdateMember(id uint64, input MemberInput) (*models.TeamMember, error) {
	if err := validateMemberInput(input); err != nil {
		return nil, err
	}

	existing, err := s.teamRepo.FindMember(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}

	member := &models.TeamMember{
		ID:           existing.ID,
		Name:         strings.TrimSpace(input.Name),
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Location:     input.Location,
		Description:  input.Description,
		LinkedinURL:  input.LinkedinURL,
		ImageURL:     input.ImageURL,
	}
	if member.ImageURL == "" {
		// No new photo uploaded; keep the stored one.
		member.ImageURL = existing.ImageURL
	}

	if err := s.teamRepo.UpdateMember(member, skillRows(input.Skills)); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return s.teamRepo.FindMember(id)
}

// ToggleMemberActive flips the soft-disable flag and returns the new value.
func (s *TeamService) ToggleMemberActive(id uint64) (bool, error) {
	member, err := s.teamRepo.FindMember(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMemberNotFound
		}
		return false, fmt.Errorf("failed to find team member: %w", err)
	}

	next := !member.Active
	if err := s.teamRepo.SetMemberActive(id, next); err != nil {
		return false, fmt.Errorf("failed to toggle team member: %w", err)
	}
	return next, nil
}

// DeleteMember removes the member together with its skill rows so no
// orphaned skills remain queryable.
func (s *TeamService) DeleteMember(id uint64) error {
	if _, err := s.teamRepo.FindMember(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find team member: %w", err)
	}
	if err := s.teamRepo.DeleteMember(id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// ListDepartments lists departments, name ascending.
func (s *TeamService) ListDepartments(activeOnly bool) ([]models.Department, error) {
	return s.teamRepo.ListDepartments(activeOnly)
}

// SetDepartmentActive flips the soft-disable flag. Departments are never
// hard-deleted so historical member rows stay valid.
func (s *TeamService) SetDepartmentActive(id uint64, active bool) error {
	if err := s.teamRepo.SetDepartmentActive(id, active); err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

// CreateDepartment creates an active department.
func (s *TeamService) CreateDepartment(name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDepartmentNameRequired
	}
	dep := &models.Department{Name: name, Active: true}
	if err := s.teamRepo.CreateDepartment(dep); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return dep, nil
}
