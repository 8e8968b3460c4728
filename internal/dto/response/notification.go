package response

type ExpiringMemberResponse struct {
	MemberID      string `json:"member_id"`
	Name          string `json:"name"`
	ExpiresOn     string `json:"expires_on"`
	DaysRemaining int    `json:"days_remaining"`
	Label         string `json:"label"`
}

type LapsedMemberResponse struct {
	MemberID    string `json:"member_id"`
	Name        string `json:"name"`
	ExpiresOn   string `json:"expires_on"`
	DaysOverdue int    `json:"days_overdue"`
}

type UpcomingExpirationsResponse struct {
	Total       int                      `json:"total"`
	HorizonDays int                      `json:"horizon_days"`
	QueryDate   string                   `json:"query_date"`
	Members     []ExpiringMemberResponse `json:"members"`
}

type ReminderResponse struct {
	MemberID  string `json:"member_id"`
	Message   string `json:"message"`
	Delivered bool   `json:"delivered"`
}
