package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/models"
)

// CustomerRepository guards the customer username uniqueness rule.
type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository

	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByUsername(ctx context.Context, username string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)

	// Create returns ErrConflict when the username is already taken.
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)

	// Update overwrites all mutable fields. ErrNotFound when the id does
	// not exist, ErrConflict when the new username belongs to another row.
	Update(ctx context.Context, id uint, customer *models.Customer) (*models.Customer, error)
}

// BarberRepository mirrors CustomerRepository for barbers.
type BarberRepository interface {
	WithTx(tx *gorm.DB) BarberRepository

	GetByID(ctx context.Context, id uint) (*models.Barber, error)
	GetByUsername(ctx context.Context, username string) (*models.Barber, error)
	GetAll(ctx context.Context) ([]models.Barber, error)

	Create(ctx context.Context, barber *models.Barber) (*models.Barber, error)
	Update(ctx context.Context, id uint, barber *models.Barber) (*models.Barber, error)

	// DeleteByID hard-deletes the barber together with the barber's join
	// rows and appointments.
	DeleteByID(ctx context.Context, id uint) (*models.Barber, error)
}

type ServiceRepository interface {
	WithTx(tx *gorm.DB) ServiceRepository

	GetByID(ctx context.Context, id uint) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)

	Create(ctx context.Context, service *models.Service) (*models.Service, error)
	DeleteByID(ctx context.Context, id uint) (*models.Service, error)
}

// BarberServiceRepository manages the many-to-many join rows.
type BarberServiceRepository interface {
	WithTx(tx *gorm.DB) BarberServiceRepository

	GetByBarberID(ctx context.Context, barberID uint) ([]models.BarberService, error)
	GetByServiceID(ctx context.Context, serviceID uint) ([]models.BarberService, error)
	GetByPair(ctx context.Context, barberID, serviceID uint) (*models.BarberService, error)

	// Create is idempotent: inserting an existing (barberID, serviceID)
	// pair returns the stored row instead of erroring.
	Create(ctx context.Context, link *models.BarberService) (*models.BarberService, error)

	// DeleteByPair returns ErrNotFound for an absent pair; callers that
	// only want convergence may ignore it.
	DeleteByPair(ctx context.Context, barberID, serviceID uint) (*models.BarberService, error)
}

type AppointmentRepository interface {
	WithTx(tx *gorm.DB) AppointmentRepository

	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)

	// GetByDate matches the calendar day of the supplied time, ignoring
	// its time-of-day.
	GetByDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.Appointment, error)
	GetByBarberID(ctx context.Context, barberID uint) ([]models.Appointment, error)
	GetByServiceID(ctx context.Context, serviceID uint) ([]models.Appointment, error)

	// Create returns the existing row unchanged when the candidate's id
	// is already stored (retry-safe clients), and ErrInvalidReference
	// when any of the three foreign keys does not resolve.
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)

	// Update overwrites status, date and all three foreign keys wholesale.
	// ErrNotFound for an absent id, ErrInvalidReference for a bad key.
	Update(ctx context.Context, id uint, appointment *models.Appointment) (*models.Appointment, error)

	DeleteByID(ctx context.Context, id uint) (*models.Appointment, error)
}
