package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) WithTx(tx *gorm.DB) booking.AppointmentRepository {
	return &AppointmentGormRepository{db: tx}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// GetByDate matches on the calendar day only: [00:00, 00:00+24h) in the
// location of the supplied time.
func (r *AppointmentGormRepository) GetByDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByCustomerID(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByBarberID(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByServiceID(
	ctx context.Context,
	serviceID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) referencesExist(
	ctx context.Context,
	ap *models.Appointment,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", ap.CustomerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return booking.ErrInvalidReference
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", ap.BarberID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return booking.ErrInvalidReference
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", ap.ServiceID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return booking.ErrInvalidReference
	}
	return nil
}

// Create returns the stored row unchanged when the candidate carries an
// id that already exists, so retried client calls stay safe.
func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	if ap.ID != 0 {
		found, err := r.GetByID(ctx, ap.ID)
		if err == nil {
			return found, nil
		}
		if !errors.Is(err, booking.ErrNotFound) {
			return nil, err
		}
	}

	if err := r.referencesExist(ctx, ap); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return nil, err
	}
	return ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	ap *models.Appointment,
) (*models.Appointment, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.referencesExist(ctx, ap); err != nil {
		return nil, err
	}

	found.BarberID = ap.BarberID
	found.CustomerID = ap.CustomerID
	found.ServiceID = ap.ServiceID
	found.AppointmentDate = ap.AppointmentDate
	found.Status = ap.Status

	if err := r.db.WithContext(ctx).Save(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *AppointmentGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var _ booking.AppointmentRepository = (*AppointmentGormRepository)(nil)
