package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) WithTx(tx *gorm.DB) booking.ServiceRepository {
	return &ServiceGormRepository{db: tx}
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceGormRepository) GetAll(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	service *models.Service,
) (*models.Service, error) {

	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (r *ServiceGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		Delete(&models.BarberService{}).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var _ booking.ServiceRepository = (*ServiceGormRepository)(nil)
