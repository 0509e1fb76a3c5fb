package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/dto"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
	ucAccount "github.com/fadebook/fadebook-api/internal/usecase/account"
	ucBookingflow "github.com/fadebook/fadebook-api/internal/usecase/bookingflow"
)

// CustomerHandler serves the customer-facing booking pages and the
// admin customer list.
type CustomerHandler struct {
	flow     *ucBookingflow.Service
	accounts *ucAccount.Service
}

func NewCustomerHandler(
	flow *ucBookingflow.Service,
	accounts *ucAccount.Service,
) *CustomerHandler {
	return &CustomerHandler{flow: flow, accounts: accounts}
}

// GET /api/customer/customers
func (h *CustomerHandler) GetAllCustomers(c *gin.Context) {
	customers, err := h.accounts.GetAllCustomers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromCustomers(customers))
}

// GET /customer/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	customer, err := h.accounts.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromCustomer(customer))
}

// PUT /api/customer/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid customer payload: %v.", err))
		return
	}

	model := req.ToModel()
	updated, err := h.accounts.UpdateCustomer(c.Request.Context(), id, &model)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromCustomer(updated))
}

// GET /api/customer/services
func (h *CustomerHandler) GetServices(c *gin.Context) {
	services, err := h.flow.ListAvailableServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromServices(services))
}

// GET /api/customer/barbers-by-service/:id
func (h *CustomerHandler) GetBarbersByService(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	barbers, err := h.flow.ListBarbersByService(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromBarbers(barbers))
}

// GET /api/customer/:id/appointments
func (h *CustomerHandler) GetAppointments(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	appointments, err := h.flow.GetAppointmentsByCustomerID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(appointments))
}

// POST /api/customer/request-appointment
func (h *CustomerHandler) RequestAppointment(c *gin.Context) {
	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid appointment request payload: %v.", err))
		return
	}

	model := req.Appointment.ToModel()
	created, err := h.flow.MakeAppointment(c.Request.Context(), &model)
	if err != nil {
		c.Error(err)
		return
	}

	httpresp.Created(c,
		fmt.Sprintf("/api/appointment/%d", created.ID),
		dto.FromAppointment(created))
}
