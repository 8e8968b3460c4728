package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"go.uber.org/zap"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *entity.CheckIn) error
	FindAll(ctx context.Context) ([]*entity.CheckIn, error)
}

type checkInRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCheckInRepository(db database.PgxIface, log *zap.Logger) CheckInRepository {
	return &checkInRepository{
		db:  db,
		log: log.With(zap.String("repository", "checkin")),
	}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	query := `
		INSERT INTO checkins (id, member_id, member_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		checkIn.ID,
		checkIn.MemberID,
		checkIn.MemberName,
		checkIn.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create check-in",
			zap.Error(err),
			zap.String("member_id", checkIn.MemberID),
		)
		return fmt.Errorf("create check-in for member %s: %w", checkIn.MemberID, err)
	}

	return nil
}

func (r *checkInRepository) FindAll(ctx context.Context) ([]*entity.CheckIn, error) {
	query := `
		SELECT id, member_id, member_name, created_at
		FROM checkins
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list check-ins", zap.Error(err))
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []*entity.CheckIn
	for rows.Next() {
		var checkIn entity.CheckIn
		err := rows.Scan(
			&checkIn.ID,
			&checkIn.MemberID,
			&checkIn.MemberName,
			&checkIn.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan check-in row", zap.Error(err))
			return nil, fmt.Errorf("scan check-in row: %w", err)
		}
		checkIns = append(checkIns, &checkIn)
	}

	return checkIns, nil
}
