package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Free-text label. "Pending", "Completed", "Cancelled" and "Expired"
	// are the values the admin UI filters on; the data layer does not
	// enforce an enum.
	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	AppointmentDate time.Time `json:"appointment_date"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnDelete:CASCADE;" json:"customer,omitempty"`

	BarberID uint   `gorm:"not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnDelete:CASCADE;" json:"barber,omitempty"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnDelete:CASCADE;" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
