package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/workbench/internal/palette"
	"go.uber.org/zap"
)

// GetPalette returns the current generation result
func (a *API) GetPalette(c *gin.Context) {
	res := a.Editor.Result()
	if res == nil {
		var err error
		if res, err = a.Editor.Recompute(); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

// PutPalette replaces the input and regenerates. A rejected input keeps
// the previous result, which is returned alongside the error.
func (a *API) PutPalette(c *gin.Context) {
	var in palette.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := a.Editor.SetInput(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "palette": res})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ApplyRecommendation makes a recommended color the new base
func (a *API) ApplyRecommendation(c *gin.Context) {
	var rec palette.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := a.Editor.ApplyRecommendation(rec)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "palette": res})
		return
	}
	c.JSON(http.StatusOK, res)
}

// SavePalette persists the current input
func (a *API) SavePalette(c *gin.Context) {
	if err := a.Editor.Save(); err != nil {
		a.Logger.Error("save palette failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save palette"})
		return
	}
	c.JSON(http.StatusOK, a.Editor.Input())
}

// GetPaletteCode returns the palettes rendered in the requested format
func (a *API) GetPaletteCode(c *gin.Context) {
	format, err := palette.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := a.Editor.Result()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no palette generated"})
		return
	}

	code, err := palette.Emit(format, res.Set)
	if err != nil {
		if errors.Is(err, palette.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.Logger.Error("emit palette failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render palette"})
		return
	}
	c.Data(http.StatusOK, contentTypes[format], []byte(code))
}

var contentTypes = map[palette.Format]string{
	palette.FormatSCSS: "text/x-scss; charset=utf-8",
	palette.FormatCSS:  "text/css; charset=utf-8",
	palette.FormatJSON: "application/json; charset=utf-8",
	palette.FormatYAML: "application/yaml; charset=utf-8",
}
