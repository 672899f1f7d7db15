package models

import "time"

type TeamMember struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Role         string    `gorm:"type:varchar(255)" json:"role"`
	DepartmentID *uint64   `json:"department_id"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	Description  string    `gorm:"type:text" json:"description"`
	LinkedinURL  string    `gorm:"type:varchar(512)" json:"linkedin_url"`
	ImageURL     string    `gorm:"type:varchar(512)" json:"image_url"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Skills     []Skill     `gorm:"foreignKey:TeamMemberID" json:"skills,omitempty"`
}
