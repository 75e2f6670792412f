package models

import "time"

// EventListRow is the public feed row: an entry of the append-only
// recycling ledger joined with point name, category name and (nullable)
// submitter username.
type EventListRow struct {
	ID           int64     `json:"id" db:"id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Quantity     int       `json:"quantity" db:"quantity"`
	PointName    string    `json:"point_name" db:"point_name"`
	CategoryName string    `json:"category_name" db:"category_name"`
	Username     *string   `json:"username" db:"username"`
}

// PointStat is one row of the by-point aggregation: how many ledger rows
// reference the point and the sum of their quantities.
type PointStat struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	EventsCount   int    `json:"events_count" db:"events_count"`
	TotalQuantity int    `json:"total_quantity" db:"total_quantity"`
}

// CategoryStat is the same aggregation grouped by category.
type CategoryStat struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	EventsCount   int    `json:"events_count" db:"events_count"`
	TotalQuantity int    `json:"total_quantity" db:"total_quantity"`
}
