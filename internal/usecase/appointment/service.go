package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/audit"
	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/models"
)

// Service owns the appointment lifecycle: creation and updates against
// validated foreign keys, lookups, and deletion. Every write commits in
// the same call through one transaction.
type Service struct {
	db           *gorm.DB
	appointments booking.AppointmentRepository
	customers    booking.CustomerRepository
	audit        *audit.Dispatcher
}

func NewService(
	db *gorm.DB,
	appointments booking.AppointmentRepository,
	customers booking.CustomerRepository,
	auditDispatcher *audit.Dispatcher,
) *Service {
	return &Service{
		db:           db,
		appointments: appointments,
		customers:    customers,
		audit:        auditDispatcher,
	}
}

// Create persists a candidate appointment. The three foreign keys and
// the status must be populated before storage is touched; a candidate
// whose id already exists comes back unchanged so retried calls are
// safe.
func (s *Service) Create(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	if ap.CustomerID == 0 || ap.BarberID == 0 || ap.ServiceID == 0 {
		return nil, httperr.BadRequest(
			"Provide a complete appointment: customer, barber and service ids are required.")
	}
	if strings.TrimSpace(ap.Status) == "" {
		return nil, httperr.BadRequest(
			"Provide a complete appointment: status is required.")
	}

	var created *models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.appointments.WithTx(tx).Create(ctx, ap)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrInvalidReference) {
			return nil, httperr.BadRequest(
				"Unable to create appointment. Verify that customer, barber, and service IDs exist.")
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}

// Update overwrites all five mutable fields of the stored row. A missing
// id and an unresolvable foreign-key combination both read as not found:
// either way the caller's target does not exist.
func (s *Service) Update(
	ctx context.Context,
	id uint,
	ap *models.Appointment,
) (*models.Appointment, error) {

	var updated *models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.appointments.WithTx(tx).Update(ctx, id, ap)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) || errors.Is(err, booking.ErrInvalidReference) {
			return nil, httperr.NotFound(
				"Appointment with ID %d not found or invalid foreign keys.", id)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return updated, nil
}

func (s *Service) Delete(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var removed *models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.appointments.WithTx(tx).DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		removed = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Appointment with ID %d not found.", id)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &removed.ID,
	})

	return removed, nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Appointment with id %d does not exist.", id)
		}
		return nil, err
	}
	return ap, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.GetAll(ctx)
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	return s.appointments.GetByDate(ctx, date)
}

func (s *Service) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	return s.appointments.GetByCustomerID(ctx, customerID)
}

func (s *Service) GetByBarberID(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	return s.appointments.GetByBarberID(ctx, barberID)
}

func (s *Service) GetByServiceID(ctx context.Context, serviceID uint) ([]models.Appointment, error) {
	return s.appointments.GetByServiceID(ctx, serviceID)
}

// LookupByUsername resolves the customer first; an unknown username is
// not found, a known customer with no bookings is an empty list.
func (s *Service) LookupByUsername(
	ctx context.Context,
	username string,
) ([]models.Appointment, error) {

	customer, err := s.customers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound(
				"Customer with the username %q was not found.", username)
		}
		return nil, err
	}

	return s.appointments.GetByCustomerID(ctx, customer.ID)
}
