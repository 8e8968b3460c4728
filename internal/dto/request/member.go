package request

type RegisterMemberRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	ExpiresOn string `json:"expires_on" validate:"required,datetime=2006-01-02"`
}
