package entity

// Plan is a priced membership duration offering. Read-only input to
// the payment processor.
type Plan struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Price        float64 `db:"price"`
	DurationDays int     `db:"duration_days"`
	Description  string  `db:"description"`
	Active       bool    `db:"active"`
}
