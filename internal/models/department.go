package models

import "time"

// Department groups team members. Departments are soft-disabled via the
// active flag, never hard-deleted, so historical member rows stay valid.
type Department struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`

	Members []TeamMember `gorm:"foreignKey:DepartmentID" json:"members,omitempty"`
}
