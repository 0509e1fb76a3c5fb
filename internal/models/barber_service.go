package models

// BarberService is the explicit join row linking one barber to one service.
// The (barber_id, service_id) pair is unique: a barber cannot offer the
// same service twice.
type BarberService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_barber_service;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnDelete:CASCADE;" json:"barber,omitempty"`

	ServiceID uint    `gorm:"uniqueIndex:idx_barber_service;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnDelete:CASCADE;" json:"service,omitempty"`
}
