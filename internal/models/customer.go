package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username    string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name        string `gorm:"size:50;not null" json:"name"`
	ContactInfo string `gorm:"size:100;not null" json:"contact_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
