package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/httperr"
	"github.com/fadebook/fadebook-api/internal/httpresp"
)

const themeCookieName = "fadebook_theme"

// cookie lifetime: one year
const themeCookieMaxAge = 365 * 24 * 60 * 60

var allowedThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// ThemeHandler persists the UI theme preference in a cookie; no server
// state is involved.
type ThemeHandler struct{}

func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// GET /api/theme
func (h *ThemeHandler) Get(c *gin.Context) {
	theme, err := c.Cookie(themeCookieName)
	if err != nil || strings.TrimSpace(theme) == "" {
		theme = "system"
	}
	httpresp.OK(c, gin.H{"theme": theme})
}

// POST /api/theme
// Accepts {"theme": "light"|"dark"|"system"} or ?theme=.
func (h *ThemeHandler) Set(c *gin.Context) {
	var req themeRequest
	_ = c.ShouldBindJSON(&req)

	value := req.Theme
	if value == "" {
		value = c.Query("theme")
	}
	value = strings.ToLower(strings.TrimSpace(value))

	if !allowedThemes[value] {
		c.Error(httperr.BadRequest("Theme must be one of: light, dark, system."))
		return
	}

	// Lax works for top-level navigations and keeps http://localhost usable.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookieName, value, themeCookieMaxAge, "/", "", c.Request.TLS != nil, false)

	httpresp.OK(c, gin.H{"theme": value})
}
