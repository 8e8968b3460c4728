package response

import (
	"gym-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID        string               `json:"id"`
	MemberID  string               `json:"member_id"`
	PlanID    int64                `json:"plan_id"`
	Amount    float64              `json:"amount"`
	Method    string               `json:"method"`
	PaidOn    string               `json:"paid_on"`
	ExpiresOn string               `json:"expires_on"`
	Status    entity.PaymentStatus `json:"status"`
}

// RenewalResponse is the pay() result: the payment plus the member's
// refreshed expiration.
type RenewalResponse struct {
	Payment      PaymentResponse `json:"payment"`
	MemberID     string          `json:"member_id"`
	MemberName   string          `json:"member_name"`
	NewExpiresOn string          `json:"new_expires_on"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		MemberID:  payment.MemberID,
		PlanID:    payment.PlanID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		PaidOn:    payment.PaidOn,
		ExpiresOn: payment.ExpiresOn,
		Status:    payment.Status,
	}
}
