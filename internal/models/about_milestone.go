package models

import "time"

// AboutMilestone is one entry of the company timeline on the About page.
type AboutMilestone struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Year        string    `gorm:"type:varchar(10);not null" json:"year"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AboutMilestone) TableName() string {
	return "about_timeline"
}
