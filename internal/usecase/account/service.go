package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/models"
)

// Service handles the customer account surface: signup, the
// username-only login, and admin-side customer access.
type Service struct {
	db        *gorm.DB
	customers booking.CustomerRepository
}

func NewService(db *gorm.DB, customers booking.CustomerRepository) *Service {
	return &Service{db: db, customers: customers}
}

// validateCustomer lists the fields signup requires. Replaces the
// source system's runtime reflection walk with a declared check.
func validateCustomer(c *models.Customer) error {
	var missing []string
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.ContactInfo) == "" {
		missing = append(missing, "contact_info")
	}
	if len(missing) > 0 {
		return httperr.Validation(
			"Given customer is incomplete: missing %s.", strings.Join(missing, ", "))
	}
	return nil
}

func (s *Service) SignUp(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	var created *models.Customer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.customers.WithTx(tx).Create(ctx, customer)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			return nil, httperr.Conflict(
				"Customer with username %q already exists.", customer.Username)
		}
		return nil, err
	}
	return created, nil
}

// Login is a bare username lookup: no credentials are involved.
func (s *Service) Login(ctx context.Context, username string) (*models.Customer, error) {
	if strings.TrimSpace(username) == "" {
		return nil, httperr.BadRequest("Username is required.")
	}

	customer, err := s.customers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound(
				"Customer with username %q does not exist.", username)
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) UsernameExists(ctx context.Context, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, httperr.BadRequest("Username is required.")
	}

	_, err := s.customers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Customer with id %d does not exist.", id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customers.GetAll(ctx)
}

func (s *Service) UpdateCustomer(
	ctx context.Context,
	id uint,
	customer *models.Customer,
) (*models.Customer, error) {

	var updated *models.Customer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.customers.WithTx(tx).Update(ctx, id, customer)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return nil, httperr.NotFound("Customer with id %d does not exist.", id)
		case errors.Is(err, booking.ErrConflict):
			return nil, httperr.Conflict(
				"Customer with username %q already exists.", customer.Username)
		}
		return nil, err
	}
	return updated, nil
}
