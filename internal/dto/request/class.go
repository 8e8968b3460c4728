package request

type CreateClassRequest struct {
	Name        string `json:"name" validate:"required"`
	Weekday     string `json:"weekday" validate:"required"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	DurationMin int    `json:"duration_min" validate:"omitempty,gt=0"`
	CapacityMax int    `json:"capacity_max" validate:"gte=0"`
	Instructor  string `json:"instructor"`
}
