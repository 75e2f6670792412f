package models

// Category defines the struct for the 'categories' table.
// Static reference data, seeded by migration.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
