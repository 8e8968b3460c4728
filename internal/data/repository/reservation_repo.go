package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindConfirmed(ctx context.Context, memberID string, classID int64) (*entity.Reservation, error)
	CountConfirmedByClass(ctx context.Context, classID int64) (int, error)
	FindAllConfirmed(ctx context.Context) ([]*entity.Reservation, error)
	FindConfirmedByClass(ctx context.Context, classID int64) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, member_id, class_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.MemberID,
		reservation.ClassID,
		reservation.Status,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("member_id", reservation.MemberID),
			zap.Int64("class_id", reservation.ClassID),
		)
		if database.IsTransient(err) {
			return apperr.Transient(err, "create reservation for member %s", reservation.MemberID)
		}
		// The partial unique index backs up the in-process duplicate check.
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("member %s already has a reservation for class %d", reservation.MemberID, reservation.ClassID)
		}
		return fmt.Errorf("create reservation for member %s: %w", reservation.MemberID, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, member_id, class_id, status, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.MemberID,
		&reservation.ClassID,
		&reservation.Status,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindConfirmed(ctx context.Context, memberID string, classID int64) (*entity.Reservation, error) {
	query := `
		SELECT id, member_id, class_id, status, created_at
		FROM reservations
		WHERE member_id = $1 AND class_id = $2 AND status = 'confirmed'
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, memberID, classID).Scan(
		&reservation.ID,
		&reservation.MemberID,
		&reservation.ClassID,
		&reservation.Status,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find confirmed reservation",
			zap.Error(err),
			zap.String("member_id", memberID),
			zap.Int64("class_id", classID),
		)
		return nil, fmt.Errorf("find confirmed reservation for member %s class %d: %w", memberID, classID, err)
	}

	return &reservation, nil
}

func (r *reservationRepository) CountConfirmedByClass(ctx context.Context, classID int64) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE class_id = $1 AND status = 'confirmed'`

	var count int
	err := r.db.QueryRow(ctx, query, classID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count confirmed reservations",
			zap.Error(err),
			zap.Int64("class_id", classID),
		)
		return 0, fmt.Errorf("count confirmed reservations for class %d: %w", classID, err)
	}

	return count, nil
}

func (r *reservationRepository) FindAllConfirmed(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, member_id, class_id, status, created_at
		FROM reservations
		WHERE status = 'confirmed'
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list confirmed reservations", zap.Error(err))
		return nil, fmt.Errorf("list confirmed reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *reservationRepository) FindConfirmedByClass(ctx context.Context, classID int64) ([]*entity.Reservation, error) {
	query := `
		SELECT id, member_id, class_id, status, created_at
		FROM reservations
		WHERE class_id = $1 AND status = 'confirmed'
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, classID)
	if err != nil {
		r.log.Error("Failed to list confirmed reservations by class",
			zap.Error(err),
			zap.Int64("class_id", classID),
		)
		return nil, fmt.Errorf("list confirmed reservations for class %d: %w", classID, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func scanReservations(rows pgx.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.MemberID,
			&reservation.ClassID,
			&reservation.Status,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}
