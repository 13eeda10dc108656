// SPDX-License-Identifier: MIT

// Package handlers serves the palette generator, commit composer and theme
// switcher over a JSON API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/workbench/internal/commit"
	"github.com/thatcatcamp/workbench/internal/logging"
	"github.com/thatcatcamp/workbench/internal/notify"
	"github.com/thatcatcamp/workbench/internal/palette"
	"github.com/thatcatcamp/workbench/internal/themes"
	"go.uber.org/zap"
)

// API holds the components the routes act on
type API struct {
	Editor   *palette.Editor
	Composer *commit.Composer
	Themes   *themes.Service
	Scheme   *themes.StaticScheme
	Notifier *notify.Notifier
	Logger   *zap.Logger
}

// Register mounts every route on r
func (a *API) Register(r gin.IRouter) {
	if a.Logger == nil {
		a.Logger = logging.OrNop(nil)
	}

	api := r.Group("/api")
	{
		api.GET("/palette", a.GetPalette)
		api.PUT("/palette", a.PutPalette)
		api.POST("/palette/recommendation", a.ApplyRecommendation)
		api.POST("/palette/save", a.SavePalette)
		api.GET("/palette/code", a.GetPaletteCode)

		api.POST("/commit/preview", a.PreviewCommit)
		api.GET("/commits", a.ListCommits)
		api.POST("/commits", a.SaveCommit)
		api.GET("/commits/:id", a.GetCommit)
		api.DELETE("/commits/:id", a.DeleteCommit)

		api.GET("/ui", a.GetUI)
		api.POST("/ui/theme/toggle", a.ToggleTheme)
		api.POST("/ui/mode/toggle", a.ToggleMode)
		api.POST("/ui/color-scheme", a.SetColorScheme)

		api.GET("/message", a.GetMessage)
	}
	r.GET("/theme.css", a.ThemeCSS)
}

// GetMessage returns the visible transient message, or 204 when none is
func (a *API) GetMessage(c *gin.Context) {
	msg := a.Notifier.Current()
	if msg == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, msg)
}
