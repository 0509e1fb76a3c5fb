package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username    string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Specialty   string `gorm:"size:100" json:"specialty"`
	ContactInfo string `gorm:"size:100" json:"contact_info"`

	BarberServices []BarberService `json:"barber_services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
