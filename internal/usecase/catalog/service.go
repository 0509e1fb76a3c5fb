package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/audit"
	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/models"
)

// Service covers the admin-managed service catalog.
type Service struct {
	db       *gorm.DB
	services booking.ServiceRepository
	audit    *audit.Dispatcher
}

func NewService(
	db *gorm.DB,
	services booking.ServiceRepository,
	auditDispatcher *audit.Dispatcher,
) *Service {
	return &Service{
		db:       db,
		services: services,
		audit:    auditDispatcher,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.services.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Service with ID %d not found.", id)
		}
		return nil, err
	}
	return service, nil
}

func (s *Service) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	var created *models.Service
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.services.WithTx(tx).Create(ctx, service)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &created.ID,
	})

	return created, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*models.Service, error) {
	var removed *models.Service
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.services.WithTx(tx).DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		removed = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Service with ID %d not found.", id)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &removed.ID,
	})

	return removed, nil
}
