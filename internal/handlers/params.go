package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/httperr"
)

// uriID parses the :id route segment.
func uriID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, httperr.BadRequest("Invalid id %q.", raw)
	}
	return uint(id), nil
}
