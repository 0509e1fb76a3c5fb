package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

type BarberServiceGormRepository struct {
	db *gorm.DB
}

func NewBarberServiceGormRepository(db *gorm.DB) *BarberServiceGormRepository {
	return &BarberServiceGormRepository{db: db}
}

func (r *BarberServiceGormRepository) WithTx(tx *gorm.DB) booking.BarberServiceRepository {
	return &BarberServiceGormRepository{db: tx}
}

func (r *BarberServiceGormRepository) GetByBarberID(
	ctx context.Context,
	barberID uint,
) ([]models.BarberService, error) {

	var links []models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("service_id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *BarberServiceGormRepository) GetByServiceID(
	ctx context.Context,
	serviceID uint,
) ([]models.BarberService, error) {

	var links []models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("service_id = ?", serviceID).
		Order("barber_id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *BarberServiceGormRepository) GetByPair(
	ctx context.Context,
	barberID, serviceID uint,
) (*models.BarberService, error) {

	var link models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("barber_id = ? AND service_id = ?", barberID, serviceID).
		First(&link).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// Create is idempotent over the (barber_id, service_id) pair: a second
// insert of the same pair returns the stored row. Guards duplicate calls
// and the re-run of a partially applied reconciliation.
func (r *BarberServiceGormRepository) Create(
	ctx context.Context,
	link *models.BarberService,
) (*models.BarberService, error) {

	found, err := r.GetByPair(ctx, link.BarberID, link.ServiceID)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, booking.ErrNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, booking.ErrConflict
		}
		return nil, err
	}
	return link, nil
}

func (r *BarberServiceGormRepository) DeleteByPair(
	ctx context.Context,
	barberID, serviceID uint,
) (*models.BarberService, error) {

	found, err := r.GetByPair(ctx, barberID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&models.BarberService{}, found.ID).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var _ booking.BarberServiceRepository = (*BarberServiceGormRepository)(nil)
