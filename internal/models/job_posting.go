package models

import "time"

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Toggle flips the two-state status flag.
func (s JobStatus) Toggle() JobStatus {
	if s == JobStatusOpen {
		return JobStatusClosed
	}
	return JobStatusOpen
}

type JobPosting struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Department       string    `gorm:"type:varchar(255)" json:"department"`
	Location         string    `gorm:"type:varchar(255)" json:"location"`
	JobType          string    `gorm:"type:varchar(100)" json:"job_type"`
	SeniorityLevel   string    `gorm:"type:varchar(100)" json:"seniority_level"`
	Description      string    `gorm:"type:text" json:"description"`
	Responsibilities []string  `gorm:"serializer:json" json:"responsibilities"`
	Requirements     []string  `gorm:"serializer:json" json:"requirements"`
	Perks            []string  `gorm:"serializer:json" json:"perks"`
	Status           JobStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}
