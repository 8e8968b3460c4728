package request

type BookReservationRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	ClassID  int64  `json:"class_id" validate:"required,gt=0"`
}
