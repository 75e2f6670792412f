package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"

	"github.com/recyclehero/recyclehero-golang/internal/middleware"
	"github.com/recyclehero/recyclehero-golang/internal/models"
)

// listColumns are the projected columns of the public points listing:
// the point row, its coordinates pulled out of the PostGIS geometry, and
// its categories aggregated into arrays.
var listColumns = []string{
	"rp.id", "rp.name", "rp.description", "rp.status",
	"ST_X(rp.geom::geometry) AS lng",
	"ST_Y(rp.geom::geometry) AS lat",
	"array_agg(c.name) AS categories",
	"array_agg(c.id) AS category_ids",
}

func approvedPointsQuery(categoryID string) sq.SelectBuilder {
	qb := sq.Select(listColumns...).
		From("recycle_points rp").
		Join("point_categories pc ON rp.id = pc.point_id").
		Join("categories c ON pc.category_id = c.id").
		Where(sq.Eq{"rp.status": models.StatusApproved}).
		GroupBy("rp.id").
		PlaceholderFormat(sq.Dollar)

	if categoryID != "" {
		qb = qb.Where(sq.Eq{"pc.category_id": categoryID})
	}
	return qb
}

// GetApprovedPoints is the handler for GET /api/points.
// Only approved points are public; pending submissions stay hidden until
// an admin moves them. An optional ?category_id narrows the listing to
// points associated with that category.
func (h *Handlers) GetApprovedPoints(c *gin.Context) {
	query, args, err := approvedPointsQuery(c.Query("category_id")).ToSql()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	points := []models.PointWithCategories{}
	if err := h.DB.Select(&points, query, args...); err != nil {
		h.Logger.Error().Err(err).Msg("points query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetNearestPoint is the handler for GET /api/points/nearest.
// It returns the approved point closest to the supplied origin, measured
// on the sphere, honoring the same category filter as the listing.
func (h *Handlers) GetNearestPoint(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	qb := approvedPointsQuery(c.Query("category_id")).
		Column(sq.Expr("ST_DistanceSphere(rp.geom::geometry, ST_SetSRID(ST_MakePoint(?, ?), 4326)) AS distance_m", lng, lat)).
		OrderBy("distance_m ASC").
		Limit(1)

	query, args, err := qb.ToSql()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var nearest models.NearestPoint
	if err := h.DB.Get(&nearest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No approved points found"})
			return
		}
		h.Logger.Error().Err(err).Msg("nearest point query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, nearest)
}

// --- Point Submission ---

// CreatePointInput defines the JSON data for a point submission.
type CreatePointInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Lat         float64 `json:"lat" binding:"required"`
	Lng         float64 `json:"lng" binding:"required"`
	CategoryIDs []int64 `json:"category_ids" binding:"required"`
}

// CreatePoint is the handler for POST /api/points. The point row and its
// category associations are written in one transaction; a new point is
// always 'pending' and invisible to the public listing until moderated.
func (h *Handlers) CreatePoint(c *gin.Context) {
	var input CreatePointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)

	tx, err := h.DB.Beginx()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer tx.Rollback()

	var pointID int64
	err = tx.QueryRow(`
		INSERT INTO recycle_points (name, description, geom, user_id, status)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, 'pending')
		RETURNING id`,
		input.Name, input.Description, input.Lng, input.Lat, userID,
	).Scan(&pointID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("point insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	for _, catID := range input.CategoryIDs {
		if _, err := tx.Exec(
			`INSERT INTO point_categories (point_id, category_id) VALUES ($1, $2)`,
			pointID, catID,
		); err != nil {
			h.Logger.Error().Err(err).Int64("pointID", pointID).Msg("point category insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Point added and pending approval"})
}
