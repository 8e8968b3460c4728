package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is a front-door entry. The member name is snapshotted so the
// attendance log survives later renames.
type CheckIn struct {
	ID         uuid.UUID `db:"id"`
	MemberID   string    `db:"member_id"`
	MemberName string    `db:"member_name"`
	CreatedAt  time.Time `db:"created_at"`
}
