package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/dto"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
	ucBarber "github.com/fadebook/fadebook-api/internal/usecase/barber"
)

type BarberHandler struct {
	svc *ucBarber.Service
}

func NewBarberHandler(svc *ucBarber.Service) *BarberHandler {
	return &BarberHandler{svc: svc}
}

// GET /api/barber
func (h *BarberHandler) GetAll(c *gin.Context) {
	barbers, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromBarbers(barbers))
}

// GET /api/barber/:id
func (h *BarberHandler) GetByID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	barber, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromBarber(barber))
}

// POST /api/barber
func (h *BarberHandler) Create(c *gin.Context) {
	var req dto.CreateBarber
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid barber payload: %v.", err))
		return
	}

	model := dto.Barber{
		Username:    req.Username,
		Name:        req.Name,
		Specialty:   req.Specialty,
		ContactInfo: req.ContactInfo,
	}.ToModel()

	created, err := h.svc.CreateWithServices(c.Request.Context(), &model, req.ServiceIDs)
	if err != nil {
		c.Error(err)
		return
	}

	httpresp.Created(c,
		fmt.Sprintf("api/barber/%d", created.ID),
		dto.FromBarber(created))
}

// PUT /api/barber/:id
func (h *BarberHandler) Update(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.Barber
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid barber payload: %v.", err))
		return
	}

	model := req.ToModel()
	updated, err := h.svc.Update(c.Request.Context(), id, &model)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromBarber(updated))
}

// DELETE /api/barber/:id
func (h *BarberHandler) Delete(c *gin.Context) {
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

// GET /api/barber/:id/services
func (h *BarberHandler) GetServices(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	services, err := h.svc.GetServices(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromServices(services))
}

// PUT /api/barber/:id/services
func (h *BarberHandler) UpdateServices(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var serviceIDs []uint
	if err := c.ShouldBindJSON(&serviceIDs); err != nil {
		c.Error(httperr.BadRequest("Invalid service id list: %v.", err))
		return
	}
	if len(serviceIDs) == 0 {
		c.Error(httperr.BadRequest("Service IDs are required."))
		return
	}

	if _, err := h.svc.ReconcileServices(c.Request.Context(), id, serviceIDs); err != nil {
		c.Error(err)
		return
	}
	httpresp.NoContent(c)
}
