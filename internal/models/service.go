package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:50;not null" json:"name"`
	Price float64 `json:"price"`

	BarberServices []BarberService `json:"barber_services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
