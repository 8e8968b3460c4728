package usecase

import (
	"context"
	"testing"

	"gym-booking/internal/dto/request"
	"gym-booking/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClass(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and keeps the given fields", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewClassService(repos.repo, testLogger())

		resp, err := svc.Create(ctx, &request.CreateClassRequest{
			Name:        "spinning",
			Weekday:     "monday",
			StartTime:   "18:00",
			DurationMin: 45,
			CapacityMax: 20,
			Instructor:  "Laura",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "spinning", resp.Name)
		assert.Equal(t, 45, resp.DurationMin)
		assert.Equal(t, 20, resp.CapacityMax)
		assert.Equal(t, "Laura", resp.Instructor)
	})

	t.Run("fills in duration and instructor defaults", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewClassService(repos.repo, testLogger())

		resp, err := svc.Create(ctx, &request.CreateClassRequest{
			Name:        "yoga",
			Weekday:     "tuesday",
			StartTime:   "07:30",
			CapacityMax: 15,
		})
		require.NoError(t, err)

		assert.Equal(t, 60, resp.DurationMin)
		assert.Equal(t, "TBD", resp.Instructor)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		tests := []struct {
			name string
			req  *request.CreateClassRequest
		}{
			{"missing name", &request.CreateClassRequest{Weekday: "monday", StartTime: "18:00", CapacityMax: 10}},
			{"bad start time", &request.CreateClassRequest{Name: "yoga", Weekday: "monday", StartTime: "6pm", CapacityMax: 10}},
			{"negative capacity", &request.CreateClassRequest{Name: "yoga", Weekday: "monday", StartTime: "18:00", CapacityMax: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repos := newTestRepos()
				svc := NewClassService(repos.repo, testLogger())

				_, err := svc.Create(ctx, tt.req)
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			})
		}
	})
}

func TestGetClass(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	classID := seedClass(t, repos, "spinning", 10)
	svc := NewClassService(repos.repo, testLogger())

	resp, err := svc.GetByID(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, "spinning", resp.Name)

	_, err = svc.GetByID(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListClassesWithOccupancy(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	seedMember(t, repos, "M-001", "Ana")
	seedMember(t, repos, "M-002", "Bruno")
	spinningID := seedClass(t, repos, "spinning", 2)
	seedClass(t, repos, "yoga", 10)

	reservations := NewReservationService(repos.repo, testLogger())
	for _, memberID := range []string{"M-001", "M-002"} {
		_, err := reservations.Book(ctx, &request.BookReservationRequest{MemberID: memberID, ClassID: spinningID})
		require.NoError(t, err)
	}

	svc := NewClassService(repos.repo, testLogger())
	occupancy, err := svc.ListWithOccupancy(ctx)
	require.NoError(t, err)
	require.Len(t, occupancy, 2)

	spinning := occupancy[0]
	assert.Equal(t, "spinning", spinning.Name)
	assert.Equal(t, 2, spinning.Confirmed)
	assert.Equal(t, 0, spinning.SeatsLeft)
	assert.True(t, spinning.Full)

	yoga := occupancy[1]
	assert.Equal(t, "yoga", yoga.Name)
	assert.Equal(t, 0, yoga.Confirmed)
	assert.Equal(t, 10, yoga.SeatsLeft)
	assert.False(t, yoga.Full)
}
