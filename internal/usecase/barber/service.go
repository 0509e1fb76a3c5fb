package barber

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fadebook/fadebook-api/internal/audit"
	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/models"
)

// Service manages barbers and the set of services each one offers.
type Service struct {
	db      *gorm.DB
	barbers booking.BarberRepository
	links   booking.BarberServiceRepository
	audit   *audit.Dispatcher
}

func NewService(
	db *gorm.DB,
	barbers booking.BarberRepository,
	links booking.BarberServiceRepository,
	auditDispatcher *audit.Dispatcher,
) *Service {
	return &Service{
		db:      db,
		barbers: barbers,
		links:   links,
		audit:   auditDispatcher,
	}
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Barber, error) {
	barber, err := s.barbers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Barber with ID %d not found.", id)
		}
		return nil, err
	}
	return barber, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Barber, error) {
	return s.barbers.GetAll(ctx)
}

func (s *Service) Create(ctx context.Context, barber *models.Barber) (*models.Barber, error) {
	var created *models.Barber
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.barbers.WithTx(tx).Create(ctx, barber)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			return nil, httperr.Conflict(
				"Barber with username %q already exists.", barber.Username)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &created.ID,
	})

	return created, nil
}

// CreateWithServices creates the barber and links the supplied service
// ids in one transaction, so a failed link insert rolls the barber back
// too. Link insertion is idempotent per pair; duplicate ids in the input
// collapse.
func (s *Service) CreateWithServices(
	ctx context.Context,
	barber *models.Barber,
	serviceIDs []uint,
) (*models.Barber, error) {

	var created *models.Barber
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.barbers.WithTx(tx).Create(ctx, barber)
		if err != nil {
			return err
		}

		links := s.links.WithTx(tx)
		toAdd, _ := booking.DiffServiceIDs(nil, serviceIDs)
		for _, serviceID := range toAdd {
			if _, err := links.Create(ctx, &models.BarberService{
				BarberID:  out.ID,
				ServiceID: serviceID,
			}); err != nil {
				return err
			}
		}

		created = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			return nil, httperr.Conflict(
				"Barber with username %q already exists.", barber.Username)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &created.ID,
		Metadata: map[string]any{"service_ids": serviceIDs},
	})

	return created, nil
}

func (s *Service) Update(
	ctx context.Context,
	id uint,
	barber *models.Barber,
) (*models.Barber, error) {

	var updated *models.Barber
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.barbers.WithTx(tx).Update(ctx, id, barber)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return nil, httperr.NotFound("Barber with ID %d not found.", id)
		case errors.Is(err, booking.ErrConflict):
			return nil, httperr.Conflict(
				"Barber with username %q already exists.", barber.Username)
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*models.Barber, error) {
	var removed *models.Barber
	err := s.db.Transaction(func(tx *gorm.DB) error {
		out, err := s.barbers.WithTx(tx).DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		removed = out
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.NotFound("Barber with ID %d not found.", id)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &removed.ID,
	})

	return removed, nil
}

// GetServices returns the services currently linked to a barber.
func (s *Service) GetServices(ctx context.Context, barberID uint) ([]models.Service, error) {
	if _, err := s.GetByID(ctx, barberID); err != nil {
		return nil, err
	}

	links, err := s.links.GetByBarberID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(links))
	for _, l := range links {
		services = append(services, l.Service)
	}
	return services, nil
}

// ReconcileServices makes the barber's stored links equal the selected
// set with the minimal number of writes: one insert per missing pair,
// one delete per stale pair, one commit for the whole batch. The
// resulting set is re-fetched and returned.
func (s *Service) ReconcileServices(
	ctx context.Context,
	barberID uint,
	selected []uint,
) ([]models.BarberService, error) {

	if _, err := s.GetByID(ctx, barberID); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		links := s.links.WithTx(tx)

		current, err := links.GetByBarberID(ctx, barberID)
		if err != nil {
			return err
		}

		toAdd, toRemove := booking.DiffServiceIDs(booking.LinkedServiceIDs(current), selected)

		for _, serviceID := range toAdd {
			if _, err := links.Create(ctx, &models.BarberService{
				BarberID:  barberID,
				ServiceID: serviceID,
			}); err != nil {
				return err
			}
		}
		for _, serviceID := range toRemove {
			// An already-absent pair is converged state, not a failure.
			if _, err := links.DeleteByPair(ctx, barberID, serviceID); err != nil &&
				!errors.Is(err, booking.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_services_reconciled",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: map[string]any{"service_ids": selected},
	})

	return s.links.GetByBarberID(ctx, barberID)
}
