package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/workbench/internal/themes"
	"go.uber.org/zap"
)

// GetUI returns the active theme and mode
func (a *API) GetUI(c *gin.Context) {
	c.JSON(http.StatusOK, a.Themes.State())
}

// ToggleTheme moves to the next theme
func (a *API) ToggleTheme(c *gin.Context) {
	a.Themes.ToggleTheme()
	c.JSON(http.StatusOK, a.Themes.State())
}

// ToggleMode moves to the next mode preference
func (a *API) ToggleMode(c *gin.Context) {
	a.Themes.ToggleMode()
	c.JSON(http.StatusOK, a.Themes.State())
}

type colorSchemeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}

// SetColorScheme records the client's prefers-color-scheme and re-resolves
// the mode
func (a *API) SetColorScheme(c *gin.Context) {
	var req colorSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dark is required"})
		return
	}
	if a.Scheme != nil {
		a.Scheme.SetDark(*req.Dark)
	}
	a.Themes.HandleColorSchemeChange()
	c.JSON(http.StatusOK, a.Themes.State())
}

// ThemeCSS serves the stylesheet for every theme and mode
func (a *API) ThemeCSS(c *gin.Context) {
	css, err := themes.GenerateStylesheet()
	if err != nil {
		a.Logger.Error("generate stylesheet failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "/* stylesheet unavailable */")
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}
