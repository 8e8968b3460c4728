package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id int64) (*entity.Plan, error)
	FindAll(ctx context.Context) ([]*entity.Plan, error)
	Count(ctx context.Context) (int64, error)
}

type planRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlanRepository(db database.PgxIface, log *zap.Logger) PlanRepository {
	return &planRepository{
		db:  db,
		log: log.With(zap.String("repository", "plan")),
	}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	query := `
		INSERT INTO plans (name, price, duration_days, description, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		plan.Name,
		plan.Price,
		plan.DurationDays,
		plan.Description,
		plan.Active,
	).Scan(&plan.ID)

	if err != nil {
		r.log.Error("Failed to create plan",
			zap.Error(err),
			zap.String("name", plan.Name),
		)
		return fmt.Errorf("create plan %s: %w", plan.Name, err)
	}

	return nil
}

func (r *planRepository) FindByID(ctx context.Context, id int64) (*entity.Plan, error) {
	query := `
		SELECT id, name, price, duration_days, description, active
		FROM plans
		WHERE id = $1
	`

	var plan entity.Plan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.Price,
		&plan.DurationDays,
		&plan.Description,
		&plan.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find plan by ID",
			zap.Error(err),
			zap.Int64("plan_id", id),
		)
		return nil, fmt.Errorf("find plan by ID %d: %w", id, err)
	}

	return &plan, nil
}

func (r *planRepository) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, price, duration_days, description, active
		FROM plans
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list plans", zap.Error(err))
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.Plan
	for rows.Next() {
		var plan entity.Plan
		err := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.Price,
			&plan.DurationDays,
			&plan.Description,
			&plan.Active,
		)
		if err != nil {
			r.log.Error("Failed to scan plan row", zap.Error(err))
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		plans = append(plans, &plan)
	}

	return plans, nil
}

func (r *planRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM plans`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count plans", zap.Error(err))
		return 0, fmt.Errorf("count plans: %w", err)
	}

	return count, nil
}
