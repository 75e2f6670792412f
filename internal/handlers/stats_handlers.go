package handlers

import (
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/recyclehero/recyclehero-golang/internal/models"
)

func statsQuery(joinTable, joinOn, categoryID string) sq.SelectBuilder {
	qb := sq.Select(
		"t.id", "t.name",
		"COUNT(*)::int AS events_count",
		"COALESCE(SUM(re.quantity), 0)::int AS total_quantity",
	).
		From("recycling_events re").
		Join(joinTable + " t ON " + joinOn).
		GroupBy("t.id", "t.name").
		OrderBy("events_count DESC").
		PlaceholderFormat(sq.Dollar)

	if categoryID != "" {
		qb = qb.Where(sq.Eq{"re.category_id": categoryID})
	}
	return qb
}

// GetRecyclingStats is the handler for GET /api/recycling-stats.
// The by-point and by-category aggregations are independent read-only
// queries and run concurrently. Statistics may lag a concurrent ledger
// insert by one request; that is acceptable.
func (h *Handlers) GetRecyclingStats(c *gin.Context) {
	categoryID := c.Query("category_id")

	byPoint := []models.PointStat{}
	byCategory := []models.CategoryStat{}

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		query, args, err := statsQuery("recycle_points", "t.id = re.point_id", categoryID).ToSql()
		if err != nil {
			return err
		}
		return h.DB.SelectContext(ctx, &byPoint, query, args...)
	})

	g.Go(func() error {
		query, args, err := statsQuery("categories", "t.id = re.category_id", categoryID).ToSql()
		if err != nil {
			return err
		}
		return h.DB.SelectContext(ctx, &byCategory, query, args...)
	})

	if err := g.Wait(); err != nil {
		h.Logger.Error().Err(err).Msg("stats queries failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"byPoint":    byPoint,
		"byCategory": byCategory,
	})
}
