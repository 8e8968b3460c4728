package response

import (
	"gym-booking/internal/data/entity"
	"gym-booking/pkg/utils"
)

type ReservationResponse struct {
	ID        string                   `json:"id"`
	MemberID  string                   `json:"member_id"`
	ClassID   int64                    `json:"class_id"`
	Status    entity.ReservationStatus `json:"status"`
	CreatedAt string                   `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        reservation.ID.String(),
		MemberID:  reservation.MemberID,
		ClassID:   reservation.ClassID,
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt.Format(utils.TimestampLayout),
	}
}
