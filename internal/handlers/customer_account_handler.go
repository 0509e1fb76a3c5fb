package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/dto"
	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
	ucAccount "github.com/fadebook/fadebook-api/internal/usecase/account"
)

type CustomerAccountHandler struct {
	svc *ucAccount.Service
}

func NewCustomerAccountHandler(svc *ucAccount.Service) *CustomerAccountHandler {
	return &CustomerAccountHandler{svc: svc}
}

// POST /api/customeraccount/signup
func (h *CustomerAccountHandler) SignUp(c *gin.Context) {
	var req dto.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.Validation("Invalid customer payload: %v.", err))
		return
	}

	model := req.ToModel()
	created, err := h.svc.SignUp(c.Request.Context(), &model)
	if err != nil {
		c.Error(err)
		return
	}

	httpresp.Created(c,
		fmt.Sprintf("/customer/%d", created.ID),
		dto.FromCustomer(created))
}

// POST /api/customeraccount/login
func (h *CustomerAccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Invalid login payload: %v.", err))
		return
	}

	customer, err := h.svc.Login(c.Request.Context(), req.Username)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, dto.FromCustomer(customer))
}

// GET /api/customeraccount/username-exists/:username
func (h *CustomerAccountHandler) UsernameExists(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	exists, err := h.svc.UsernameExists(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	httpresp.OK(c, gin.H{"exists": exists})
}
