package bookingflow

import (
	"context"

	"github.com/fadebook/fadebook-api/internal/domain/booking"
	"github.com/fadebook/fadebook-api/internal/models"
	appointmentuc "github.com/fadebook/fadebook-api/internal/usecase/appointment"
)

// Service backs the customer-facing booking pages: browse the catalog,
// find barbers for a service, request an appointment.
type Service struct {
	services     booking.ServiceRepository
	links        booking.BarberServiceRepository
	appointments *appointmentuc.Service
}

func NewService(
	services booking.ServiceRepository,
	links booking.BarberServiceRepository,
	appointments *appointmentuc.Service,
) *Service {
	return &Service{
		services:     services,
		links:        links,
		appointments: appointments,
	}
}

func (s *Service) ListAvailableServices(ctx context.Context) ([]models.Service, error) {
	return s.services.GetAll(ctx)
}

// ListBarbersByService returns every barber linked to the given service,
// possibly none.
func (s *Service) ListBarbersByService(ctx context.Context, serviceID uint) ([]models.Barber, error) {
	links, err := s.links.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	barbers := make([]models.Barber, 0, len(links))
	for _, l := range links {
		barbers = append(barbers, l.Barber)
	}
	return barbers, nil
}

func (s *Service) GetAppointmentsByCustomerID(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	return s.appointments.GetByCustomerID(ctx, customerID)
}

// MakeAppointment carries the same contract as the admin-side create:
// populated fields, resolvable foreign keys, retry-safe on a known id.
func (s *Service) MakeAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	return s.appointments.Create(ctx, ap)
}
