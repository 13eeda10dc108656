package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/workbench/internal/commit"
	"go.uber.org/zap"
)

// PreviewCommit renders a form without touching the composer
func (a *API) PreviewCommit(c *gin.Context) {
	form := commit.NewForm()
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": form.Message()})
}

// ListCommits returns the saved messages
func (a *API) ListCommits(c *gin.Context) {
	c.JSON(http.StatusOK, a.Composer.Saved())
}

// SaveCommit saves the posted form
func (a *API) SaveCommit(c *gin.Context) {
	form := commit.NewForm()
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := a.Composer.SaveForm(form)
	if err != nil {
		if errors.Is(err, commit.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.Logger.Error("save commit message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save commit message"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GetCommit returns one saved message
func (a *API) GetCommit(c *gin.Context) {
	saved, err := a.Composer.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteCommit removes a saved message
func (a *API) DeleteCommit(c *gin.Context) {
	id := c.Param("id")
	if _, err := a.Composer.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err := a.Composer.RemoveSaved(id); err != nil {
		a.Logger.Error("delete commit message failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete commit message"})
		return
	}
	c.Status(http.StatusNoContent)
}
