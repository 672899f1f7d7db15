package models

import "time"

// Application is a candidate submission against a job posting. The resume
// is uploaded to object storage first; the row stores only its URL.
type Application struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	ResumeURL string    `gorm:"type:varchar(512);not null" json:"resume_url"`
	JobID     uint64    `gorm:"not null;index" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
