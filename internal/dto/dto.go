package dto

import (
	"time"

	"github.com/fadebook/fadebook-api/internal/models"
)

// Wire types for the REST surface. Field names follow the camelCase
// contract the frontend consumes.

type Customer struct {
	CustomerID  uint   `json:"customerId"`
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contactInfo" binding:"required"`
}

type Barber struct {
	BarberID    uint   `json:"barberId"`
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Specialty   string `json:"specialty"`
	ContactInfo string `json:"contactInfo"`
}

// CreateBarber carries the optional initial service links.
type CreateBarber struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Specialty   string `json:"specialty"`
	ContactInfo string `json:"contactInfo"`
	ServiceIDs  []uint `json:"serviceIds"`
}

type Service struct {
	ServiceID    uint    `json:"serviceId"`
	ServiceName  string  `json:"serviceName" binding:"required"`
	ServicePrice float64 `json:"servicePrice"`
}

type Appointment struct {
	AppointmentID   uint      `json:"appointmentId"`
	Status          string    `json:"status"`
	AppointmentDate time.Time `json:"appointmentDate"`
	CustomerID      uint      `json:"customerId"`
	BarberID        uint      `json:"barberId"`
	ServiceID       uint      `json:"serviceId"`
}

type LoginRequest struct {
	Username string `json:"username"`
}

// AppointmentRequest is the customer booking payload: the signed-in
// customer plus the appointment they want.
type AppointmentRequest struct {
	Customer    Customer    `json:"customer"`
	Appointment Appointment `json:"appointment"`
}

// ---------- model mapping ----------

func FromCustomer(m *models.Customer) Customer {
	return Customer{
		CustomerID:  m.ID,
		Username:    m.Username,
		Name:        m.Name,
		ContactInfo: m.ContactInfo,
	}
}

func (d Customer) ToModel() models.Customer {
	return models.Customer{
		ID:          d.CustomerID,
		Username:    d.Username,
		Name:        d.Name,
		ContactInfo: d.ContactInfo,
	}
}

func FromCustomers(ms []models.Customer) []Customer {
	out := make([]Customer, 0, len(ms))
	for i := range ms {
		out = append(out, FromCustomer(&ms[i]))
	}
	return out
}

func FromBarber(m *models.Barber) Barber {
	return Barber{
		BarberID:    m.ID,
		Username:    m.Username,
		Name:        m.Name,
		Specialty:   m.Specialty,
		ContactInfo: m.ContactInfo,
	}
}

func (d Barber) ToModel() models.Barber {
	return models.Barber{
		ID:          d.BarberID,
		Username:    d.Username,
		Name:        d.Name,
		Specialty:   d.Specialty,
		ContactInfo: d.ContactInfo,
	}
}

func FromBarbers(ms []models.Barber) []Barber {
	out := make([]Barber, 0, len(ms))
	for i := range ms {
		out = append(out, FromBarber(&ms[i]))
	}
	return out
}

func FromService(m *models.Service) Service {
	return Service{
		ServiceID:    m.ID,
		ServiceName:  m.Name,
		ServicePrice: m.Price,
	}
}

func (d Service) ToModel() models.Service {
	return models.Service{
		ID:    d.ServiceID,
		Name:  d.ServiceName,
		Price: d.ServicePrice,
	}
}

func FromServices(ms []models.Service) []Service {
	out := make([]Service, 0, len(ms))
	for i := range ms {
		out = append(out, FromService(&ms[i]))
	}
	return out
}

func FromAppointment(m *models.Appointment) Appointment {
	return Appointment{
		AppointmentID:   m.ID,
		Status:          m.Status,
		AppointmentDate: m.AppointmentDate,
		CustomerID:      m.CustomerID,
		BarberID:        m.BarberID,
		ServiceID:       m.ServiceID,
	}
}

func (d Appointment) ToModel() models.Appointment {
	return models.Appointment{
		ID:              d.AppointmentID,
		Status:          d.Status,
		AppointmentDate: d.AppointmentDate,
		CustomerID:      d.CustomerID,
		BarberID:        d.BarberID,
		ServiceID:       d.ServiceID,
	}
}

func FromAppointments(ms []models.Appointment) []Appointment {
	out := make([]Appointment, 0, len(ms))
	for i := range ms {
		out = append(out, FromAppointment(&ms[i]))
	}
	return out
}
