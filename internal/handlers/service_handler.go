package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/dto"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
	ucCatalog "github.com/fadebook/fadebook-api/internal/usecase/catalog"
)

type ServiceHandler struct {
	svc *ucCatalog.Service
}

func NewServiceHandler(svc *ucCatalog.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// GET /api/service
func (h *ServiceHandler) GetAll(c *gin.Context) {
	services, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.List(c, dto.FromServices(services))
}

// GET /api/service/:id
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := uriID(c)
	if err != nil {
		c.Error(err)
		return
	}

	service, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromService(service))
}

// POST /api/service
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid service payload: %v.", err))
		return
	}
	if req.ServicePrice <= 0 {
		c.Error(httperr.BadRequest("Service price must be positive."))
		return
	}

	model := req.ToModel()
	created, err := h.svc.Create(c.Request.Context(), &model)
	if err != nil {
		c.Error(err)
		return
	}

	httpresp.Created(c,
		fmt.Sprintf("/api/service/%d", created.ID),
		dto.FromService(created))
}

// DELETE /api/service/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
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
