package request

type RecordCheckInRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}
