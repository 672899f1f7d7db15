package dto

import (
	"time"

	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/utils"
)

// JobRequest is the admin form payload. The three list fields arrive as
// newline-delimited text, exactly as they are typed into the form, and are
// split at this boundary.
type JobRequest struct {
	Title            string `json:"title" binding:"required"`
	Department       string `json:"department"`
	Location         string `json:"location"`
	JobType          string `json:"job_type"`
	SeniorityLevel   string `json:"seniority_level"`
	Description      string `json:"description"`
	Responsibilities string `json:"responsibilities"`
	Requirements     string `json:"requirements"`
	Perks            string `json:"perks"`
}

// ToJobPosting converts the form payload into a row.
func (r JobRequest) ToJobPosting() models.JobPosting {
	return models.JobPosting{
		Title:            r.Title,
		Department:       r.Department,
		Location:         r.Location,
		JobType:          r.JobType,
		SeniorityLevel:   r.SeniorityLevel,
		Description:      r.Description,
		Responsibilities: utils.SplitLines(r.Responsibilities),
		Requirements:     utils.SplitLines(r.Requirements),
		Perks:            utils.SplitLines(r.Perks),
	}
}

// JobFormDTO is a posting loaded back into the admin edit form, list fields
// joined with newlines.
type JobFormDTO struct {
	ID               uint64           `json:"id"`
	Title            string           `json:"title"`
	Department       string           `json:"department"`
	Location         string           `json:"location"`
	JobType          string           `json:"job_type"`
	SeniorityLevel   string           `json:"seniority_level"`
	Description      string           `json:"description"`
	Responsibilities string           `json:"responsibilities"`
	Requirements     string           `json:"requirements"`
	Perks            string           `json:"perks"`
	Status           models.JobStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ToJobFormDTO converts a row for the edit form.
func ToJobFormDTO(job models.JobPosting) JobFormDTO {
	return JobFormDTO{
		ID:               job.ID,
		Title:            job.Title,
		Department:       job.Department,
		Location:         job.Location,
		JobType:          job.JobType,
		SeniorityLevel:   job.SeniorityLevel,
		Description:      job.Description,
		Responsibilities: utils.JoinLines(job.Responsibilities),
		Requirements:     utils.JoinLines(job.Requirements),
		Perks:            utils.JoinLines(job.Perks),
		Status:           job.Status,
		CreatedAt:        job.CreatedAt,
	}
}
