package usecase

import (
	"context"
	"testing"

	"gym-booking/internal/dto/request"
	"gym-booking/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMember(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the member with their expiration date", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewMemberService(repos.members, testLogger())

		resp, err := svc.Register(ctx, &request.RegisterMemberRequest{
			ID:        "M-001",
			Name:      "Ana",
			Phone:     "+5215512345678",
			ExpiresOn: "2026-09-30",
		})
		require.NoError(t, err)

		assert.Equal(t, "M-001", resp.ID)
		assert.Equal(t, "Ana", resp.Name)
		assert.Equal(t, "+5215512345678", resp.Phone)
		assert.Equal(t, "2026-09-30", resp.ExpiresOn)
	})

	t.Run("reusing an id conflicts", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewMemberService(repos.members, testLogger())

		_, err := svc.Register(ctx, &request.RegisterMemberRequest{
			ID: "M-001", Name: "Ana", ExpiresOn: "2026-09-30",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, &request.RegisterMemberRequest{
			ID: "M-001", Name: "Otro", ExpiresOn: "2026-10-31",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		tests := []struct {
			name string
			req  *request.RegisterMemberRequest
		}{
			{"missing id", &request.RegisterMemberRequest{Name: "Ana", ExpiresOn: "2026-09-30"}},
			{"missing name", &request.RegisterMemberRequest{ID: "M-001", ExpiresOn: "2026-09-30"}},
			{"missing expiration", &request.RegisterMemberRequest{ID: "M-001", Name: "Ana"}},
			{"wrong date format", &request.RegisterMemberRequest{ID: "M-001", Name: "Ana", ExpiresOn: "30/09/2026"}},
			{"bad phone", &request.RegisterMemberRequest{ID: "M-001", Name: "Ana", Phone: "ext. 42", ExpiresOn: "2026-09-30"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repos := newTestRepos()
				svc := NewMemberService(repos.members, testLogger())

				_, err := svc.Register(ctx, tt.req)
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			})
		}
	})
}

func TestGetMember(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := NewMemberService(repos.members, testLogger())

	_, err := svc.Register(ctx, &request.RegisterMemberRequest{
		ID: "M-001", Name: "Ana", ExpiresOn: "2026-09-30",
	})
	require.NoError(t, err)

	resp, err := svc.GetByID(ctx, "M-001")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)

	_, err = svc.GetByID(ctx, "ghost")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := NewMemberService(repos.members, testLogger())

	for _, id := range []string{"M-003", "M-001", "M-002"} {
		_, err := svc.Register(ctx, &request.RegisterMemberRequest{
			ID: id, Name: "Member " + id, ExpiresOn: "2026-09-30",
		})
		require.NoError(t, err)
	}

	members, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)

	// Registration order is preserved.
	assert.Equal(t, "M-003", members[0].ID)
	assert.Equal(t, "M-001", members[1].ID)
	assert.Equal(t, "M-002", members[2].ID)
}
