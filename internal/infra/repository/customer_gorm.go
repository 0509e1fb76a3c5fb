package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) WithTx(tx *gorm.DB) booking.CustomerRepository {
	return &CustomerGormRepository{db: tx}
}

func (r *CustomerGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&customer).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerGormRepository) GetAll(
	ctx context.Context,
) ([]models.Customer, error) {

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Create pre-checks the username so a collision surfaces as ErrConflict
// instead of a raw unique-index violation. The index remains the backstop
// for the check-then-act window.
func (r *CustomerGormRepository) Create(
	ctx context.Context,
	customer *models.Customer,
) (*models.Customer, error) {

	_, err := r.GetByUsername(ctx, customer.Username)
	if err == nil {
		return nil, booking.ErrConflict
	}
	if !errors.Is(err, booking.ErrNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, booking.ErrConflict
		}
		return nil, err
	}
	return customer, nil
}

func (r *CustomerGormRepository) Update(
	ctx context.Context,
	id uint,
	customer *models.Customer,
) (*models.Customer, error) {

	found, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if customer.Username != "" && customer.Username != found.Username {
		if _, err := r.GetByUsername(ctx, customer.Username); err == nil {
			return nil, booking.ErrConflict
		} else if !errors.Is(err, booking.ErrNotFound) {
			return nil, err
		}
	}

	found.Username = customer.Username
	found.Name = customer.Name
	found.ContactInfo = customer.ContactInfo

	if err := r.db.WithContext(ctx).Save(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var _ booking.CustomerRepository = (*CustomerGormRepository)(nil)
