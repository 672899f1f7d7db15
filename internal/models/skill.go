package models

import "time"

// Skill belongs to exactly one team member. The set is replaced wholesale
// on member update rather than diffed.
type Skill struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Percentage   int       `gorm:"not null" json:"percentage"`
	TeamMemberID uint64    `gorm:"not null;index" json:"team_member_id"`
	CreatedAt    time.Time `json:"created_at"`
}
