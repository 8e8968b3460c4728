package response

import (
	"gym-booking/internal/data/entity"
)

type MemberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	ExpiresOn string `json:"expires_on"`
}

func MemberToResponse(member *entity.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Phone:     member.Phone,
		ExpiresOn: member.ExpiresOn,
	}
}
