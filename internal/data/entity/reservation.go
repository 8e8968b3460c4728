package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation binds a member to one seat in one class. A cancelled
// reservation never goes back to confirmed; re-booking creates a new
// record.
type Reservation struct {
	ID        uuid.UUID         `db:"id"`
	MemberID  string            `db:"member_id"`
	ClassID   int64             `db:"class_id"`
	Status    ReservationStatus `db:"status"`
	CreatedAt time.Time         `db:"created_at"`
}
