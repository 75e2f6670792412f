package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recyclehero/recyclehero-golang/internal/models"
)

//
// --- Admin: Point Moderation Handlers ---
//

// GetAllPoints is the handler for GET /api/admin/points.
// The moderation queue shows every point regardless of status, newest
// first, with the submitter's username when the account still exists.
func (h *Handlers) GetAllPoints(c *gin.Context) {
	query := `
		SELECT rp.id, rp.name, rp.status, rp.created_at, u.username
		FROM recycle_points rp
		LEFT JOIN users u ON rp.user_id = u.id
		ORDER BY rp.created_at DESC`

	points := []models.ModerationPoint{}
	if err := h.DB.Select(&points, query); err != nil {
		h.Logger.Error().Err(err).Msg("moderation queue query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// UpdatePointStatusInput defines the JSON data for a status transition.
type UpdatePointStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePointStatus is the handler for PATCH /api/admin/points/:id.
// The write is an unconditional overwrite and therefore idempotent; the
// status value itself is validated against the three-state enum.
func (h *Handlers) UpdatePointStatus(c *gin.Context) {
	pointID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid point id"})
		return
	}

	var input UpdatePointStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of pending, approved or rejected"})
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE recycle_points SET status = $1 WHERE id = $2`,
		input.Status, pointID,
	); err != nil {
		h.Logger.Error().Err(err).Int64("pointID", pointID).Msg("status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Point %s", input.Status)})
}
