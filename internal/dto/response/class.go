package response

import (
	"gym-booking/internal/data/entity"
)

type ClassResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"start_time"`
	DurationMin int    `json:"duration_min"`
	CapacityMax int    `json:"capacity_max"`
	Instructor  string `json:"instructor"`
}

// ClassOccupancyResponse adds live seat usage for the dashboard.
type ClassOccupancyResponse struct {
	ClassResponse
	Confirmed int  `json:"confirmed"`
	SeatsLeft int  `json:"seats_left"`
	Full      bool `json:"full"`
}

func ClassToResponse(class *entity.Class) ClassResponse {
	return ClassResponse{
		ID:          class.ID,
		Name:        class.Name,
		Weekday:     class.Weekday,
		StartTime:   class.StartTime,
		DurationMin: class.DurationMin,
		CapacityMax: class.CapacityMax,
		Instructor:  class.Instructor,
	}
}
