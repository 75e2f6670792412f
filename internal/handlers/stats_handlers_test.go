package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recyclehero/recyclehero-golang/internal/models"
)

func statRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "events_count", "total_quantity"})
}

func TestGetRecyclingStats(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter()
	r.GET("/api/recycling-stats", h.GetRecyclingStats)

	// The two aggregations run concurrently; arrival order is not fixed.
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("JOIN recycle_points t").
		WillReturnRows(statRows().
			AddRow(int64(11), "Tomberon Kaufland", 2, 6).
			AddRow(int64(12), "Centru Obor", 1, 4))
	mock.ExpectQuery("JOIN categories t").
		WillReturnRows(statRows().
			AddRow(int64(1), "Plastic", 2, 7).
			AddRow(int64(2), "Sticla", 1, 3))

	w := doGet(r, "/api/recycling-stats")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ByPoint    []models.PointStat    `json:"byPoint"`
		ByCategory []models.CategoryStat `json:"byCategory"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.ByPoint, 2)
	assert.Equal(t, "Tomberon Kaufland", resp.ByPoint[0].Name)
	assert.Equal(t, 2, resp.ByPoint[0].EventsCount)
	assert.Equal(t, 6, resp.ByPoint[0].TotalQuantity)

	require.Len(t, resp.ByCategory, 2)
	assert.Equal(t, "Plastic", resp.ByCategory[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecyclingStats_CategoryFilter(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter()
	r.GET("/api/recycling-stats", h.GetRecyclingStats)

	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("JOIN recycle_points t").
		WithArgs("1").
		WillReturnRows(statRows().AddRow(int64(11), "Tomberon Kaufland", 2, 6))
	mock.ExpectQuery("JOIN categories t").
		WithArgs("1").
		WillReturnRows(statRows().AddRow(int64(1), "Plastic", 2, 6))

	w := doGet(r, "/api/recycling-stats?category_id=1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecyclingStats_Empty(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter()
	r.GET("/api/recycling-stats", h.GetRecyclingStats)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery("JOIN recycle_points t").WillReturnRows(statRows())
	mock.ExpectQuery("JOIN categories t").WillReturnRows(statRows())

	w := doGet(r, "/api/recycling-stats")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"byPoint":[],"byCategory":[]}`, w.Body.String())
}
