package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) WithTx(tx *gorm.DB) booking.BarberRepository {
	return &BarberGormRepository{db: tx}
}

func (r *BarberGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BarberGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&barber).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BarberGormRepository) GetAll(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) Create(
	ctx context.Context,
	barber *models.Barber,
) (*models.Barber, error) {

	_, err := r.GetByUsername(ctx, barber.Username)
	if err == nil {
		return nil, booking.ErrConflict
	}
	if !errors.Is(err, booking.ErrNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(barber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, booking.ErrConflict
		}
		return nil, err
	}
	return barber, nil
}

func (r *BarberGormRepository) Update(
	ctx context.Context,
	id uint,
	barber *models.Barber,
) (*models.Barber, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if barber.Username != "" && barber.Username != found.Username {
		if _, err := r.GetByUsername(ctx, barber.Username); err == nil {
			return nil, booking.ErrConflict
		} else if !errors.Is(err, booking.ErrNotFound) {
			return nil, err
		}
	}

	found.Username = barber.Username
	found.Name = barber.Name
	found.Specialty = barber.Specialty
	found.ContactInfo = barber.ContactInfo

	if err := r.db.WithContext(ctx).Save(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// DeleteByID hard-deletes the barber together with the barber's join
// rows and appointments. The deletes are issued explicitly so behavior
// does not depend on the backend enforcing the FK cascade.
func (r *BarberGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", id).
		Delete(&models.BarberService{}).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", id).
		Delete(&models.Appointment{}).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var _ booking.BarberRepository = (*BarberGormRepository)(nil)
