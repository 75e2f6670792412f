package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"

	"github.com/recyclehero/recyclehero-golang/internal/middleware"
	"github.com/recyclehero/recyclehero-golang/internal/models"
)

// recentEventsLimit caps the public feed at the most recent entries.
const recentEventsLimit = 200

// CreateEventInput defines the JSON data for a recycling event batch.
// Quantity is left untyped because clients send it as a number or a
// string; normalizeQuantity sorts it out.
type CreateEventInput struct {
	PointID     int64   `json:"pointId" binding:"required"`
	CategoryIDs []int64 `json:"categoryIds" binding:"required,min=1"`
	Quantity    any     `json:"quantity"`
}

// normalizeQuantity coerces a client-supplied quantity to a positive
// integer, defaulting to 1 when the value is absent, unparsable or
// non-positive.
func normalizeQuantity(v any) int {
	switch q := v.(type) {
	case float64:
		// Convert before the positivity check so fractional values below
		// one (and out-of-range floats) fall back to 1 instead of
		// storing a truncated 0.
		if n := int(q); n > 0 {
			return n
		}
	case json.Number:
		if n, err := q.Int64(); err == nil && n > 0 {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// CreateRecyclingEvent is the handler for POST /api/recycling-events.
// One ledger row is inserted per category id, all sharing the same point
// and normalized quantity, in a single all-or-nothing transaction.
func (h *Handlers) CreateRecyclingEvent(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing point or waste category"})
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)
	quantity := normalizeQuantity(input.Quantity)

	tx, err := h.DB.Beginx()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the recycling event"})
		return
	}
	defer tx.Rollback()

	for _, catID := range input.CategoryIDs {
		if _, err := tx.Exec(`
			INSERT INTO recycling_events (user_id, point_id, category_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			userID, input.PointID, catID, quantity,
		); err != nil {
			h.Logger.Error().Err(err).Int64("pointID", input.PointID).Msg("event insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the recycling event"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the recycling event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recycling event saved"})
}

// GetRecentEvents is the handler for GET /api/recycling-events.
// Returns the newest entries of the ledger joined with point, category
// and submitter names, optionally filtered by category.
func (h *Handlers) GetRecentEvents(c *gin.Context) {
	qb := sq.Select(
		"re.id", "re.created_at", "re.quantity",
		"rp.name AS point_name",
		"c.name AS category_name",
		"u.username",
	).
		From("recycling_events re").
		Join("recycle_points rp ON rp.id = re.point_id").
		Join("categories c ON c.id = re.category_id").
		LeftJoin("users u ON u.id = re.user_id").
		OrderBy("re.created_at DESC").
		Limit(recentEventsLimit).
		PlaceholderFormat(sq.Dollar)

	if categoryID := c.Query("category_id"); categoryID != "" {
		qb = qb.Where(sq.Eq{"re.category_id": categoryID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load the events"})
		return
	}

	events := []models.EventListRow{}
	if err := h.DB.Select(&events, query, args...); err != nil {
		h.Logger.Error().Err(err).Msg("events query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load the events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
