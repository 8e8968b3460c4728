package response

import (
	"gym-booking/internal/data/entity"
	"gym-booking/pkg/utils"
)

type CheckInResponse struct {
	ID         string `json:"id"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	At         string `json:"at"`
}

func CheckInToResponse(checkIn *entity.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:         checkIn.ID.String(),
		MemberID:   checkIn.MemberID,
		MemberName: checkIn.MemberName,
		At:         checkIn.CreatedAt.Format(utils.TimestampLayout),
	}
}
