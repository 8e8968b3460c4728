package entity

import (
	"time"

	"gym-booking/pkg/utils"
)

// Member is a person with a tracked membership-expiration date.
// The ID is assigned externally (front-desk card number) and stays
// stable for the member's lifetime.
type Member struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	ExpiresOn string    `db:"expires_on"`
	CreatedAt time.Time `db:"created_at"`
}

// ExpirationDate parses the stored expiration. Historical records may
// carry malformed dates; read paths skip those instead of failing.
func (m *Member) ExpirationDate() (time.Time, error) {
	return utils.ParseDate(m.ExpiresOn)
}
