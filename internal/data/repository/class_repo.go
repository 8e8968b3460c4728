package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id int64) (*entity.Class, error)
	FindAll(ctx context.Context) ([]*entity.Class, error)
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	query := `
		INSERT INTO classes (name, weekday, start_time, duration_min, capacity_max, instructor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		class.Name,
		class.Weekday,
		class.StartTime,
		class.DurationMin,
		class.CapacityMax,
		class.Instructor,
		class.CreatedAt,
	).Scan(&class.ID)

	if err != nil {
		r.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("name", class.Name),
		)
		return fmt.Errorf("create class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id int64) (*entity.Class, error) {
	query := `
		SELECT id, name, weekday, start_time, duration_min, capacity_max, instructor, created_at
		FROM classes
		WHERE id = $1
	`

	var class entity.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.Weekday,
		&class.StartTime,
		&class.DurationMin,
		&class.CapacityMax,
		&class.Instructor,
		&class.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class by ID",
			zap.Error(err),
			zap.Int64("class_id", id),
		)
		return nil, fmt.Errorf("find class by ID %d: %w", id, err)
	}

	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]*entity.Class, error) {
	query := `
		SELECT id, name, weekday, start_time, duration_min, capacity_max, instructor, created_at
		FROM classes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list classes", zap.Error(err))
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*entity.Class
	for rows.Next() {
		var class entity.Class
		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Weekday,
			&class.StartTime,
			&class.DurationMin,
			&class.CapacityMax,
			&class.Instructor,
			&class.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan class row", zap.Error(err))
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}
