package request

type RecordPaymentRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	PlanID   int64  `json:"plan_id" validate:"required,gt=0"`
	Method   string `json:"method" validate:"required"`
}
