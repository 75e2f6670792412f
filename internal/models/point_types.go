package models

import (
	"time"

	"github.com/lib/pq"
)

// Point statuses. A point is born 'pending' and is only ever moved to
// 'approved' or 'rejected' by an admin; public listings show approved only.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three allowed point statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// PointWithCategories is the public listing row: an approved point joined
// with its aggregated category names and ids. The geographic position
// lives in a PostGIS geometry column; lat/lng are projected out with
// ST_X/ST_Y when read.
type PointWithCategories struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description *string        `json:"description" db:"description"`
	Status      string         `json:"status" db:"status"`
	Lng         float64        `json:"lng" db:"lng"`
	Lat         float64        `json:"lat" db:"lat"`
	Categories  pq.StringArray `json:"categories" db:"categories"`
	CategoryIDs pq.Int64Array  `json:"category_ids" db:"category_ids"`
}

// NearestPoint is a listing row annotated with the spherical distance (in
// meters) from a caller-supplied origin.
type NearestPoint struct {
	PointWithCategories
	DistanceM float64 `json:"distance_m" db:"distance_m"`
}

// ModerationPoint is the admin queue row: every point regardless of status,
// joined with the submitter's username (NULL for deleted/absent users).
type ModerationPoint struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Username  *string   `json:"username" db:"username"`
}
