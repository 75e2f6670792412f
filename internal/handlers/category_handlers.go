package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recyclehero/recyclehero-golang/internal/models"
)

// GetAllCategories is the handler for GET /api/categories.
// Categories are static reference data seeded by migration.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories := []models.Category{}
	if err := h.DB.Select(&categories, `SELECT id, name FROM categories ORDER BY id`); err != nil {
		h.Logger.Error().Err(err).Msg("category query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, categories)
}
