package models

import "time"

// AdminAccount authorizes a signed-in email for the admin back office.
// Rows are provisioned out-of-band; the application only ever reads them.
type AdminAccount struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name the schema has always used.
func (AdminAccount) TableName() string {
	return "admins"
}
