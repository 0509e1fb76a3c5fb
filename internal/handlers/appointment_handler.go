package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/dto"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
	ucAppointment "github.com/fadebook/fadebook-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	svc *ucAppointment.Service
}

func NewAppointmentHandler(svc *ucAppointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// POST /api/appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid appointment payload: %v.", err))
		return
	}

	model := req.ToModel()
	created, err := h.svc.Create(c.Request.Context(), &model)
	if err != nil {
		c.Error(err)
		return
	}

	httpresp.Created(c,
		fmt.Sprintf("api/appointment/%d", created.ID),
		dto.FromAppointment(created))
}

// GET /api/appointment/:id
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ap, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

// GET /api/appointment
func (h *AppointmentHandler) GetAll(c *gin.Context) {
	aps, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// PUT /api/appointment/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid appointment payload: %v.", err))
		return
	}

	model := req.ToModel()
	model.ID = id

	updated, err := h.svc.Update(c.Request.Context(), id, &model)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(updated))
}

// GET /api/appointment/by-date?date=2025-01-01
func (h *AppointmentHandler) GetByDate(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		c.Error(httperr.BadRequest("Query parameter date is required."))
		return
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, raw); err != nil {
			c.Error(httperr.BadRequest("Invalid date %q.", raw))
			return
		}
	}

	aps, err := h.svc.GetByDate(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// GET /api/appointment/by-username/:username
func (h *AppointmentHandler) GetByUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.Error(httperr.BadRequest("Username is required."))
		return
	}

	aps, err := h.svc.LookupByUsername(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// GET /api/appointment/by-customer/:id
func (h *AppointmentHandler) GetByCustomerID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	aps, err := h.svc.GetByCustomerID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// GET /api/appointment/by-barber/:id
func (h *AppointmentHandler) GetByBarberID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	aps, err := h.svc.GetByBarberID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// GET /api/appointment/by-service/:id
func (h *AppointmentHandler) GetByServiceID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	aps, err := h.svc.GetByServiceID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

// DELETE /api/appointment/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	httpresp.NoContent(c)
}
