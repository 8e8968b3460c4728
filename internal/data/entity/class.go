package entity

import (
	"time"
)

// Class is a recurring scheduled session with a seat capacity.
type Class struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Weekday     string    `db:"weekday"`
	StartTime   string    `db:"start_time"`
	DurationMin int       `db:"duration_min"`
	CapacityMax int       `db:"capacity_max"`
	Instructor  string    `db:"instructor"`
	CreatedAt   time.Time `db:"created_at"`
}
