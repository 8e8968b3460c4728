package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// Payment records money received against a plan. Amount is copied
// from the plan price at payment time and never re-read. Payments are
// append-only.
type Payment struct {
	ID        uuid.UUID     `db:"id"`
	MemberID  string        `db:"member_id"`
	PlanID    int64         `db:"plan_id"`
	Amount    float64       `db:"amount"`
	Method    string        `db:"method"`
	PaidOn    string        `db:"paid_on"`
	ExpiresOn string        `db:"expires_on"`
	Status    PaymentStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
}
