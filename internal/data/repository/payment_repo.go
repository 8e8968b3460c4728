package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	// CreateWithRenewal inserts the payment and moves the member's
	// expiration in one transaction. A crash between the two must
	// never leave a payment without its renewal.
	CreateWithRenewal(ctx context.Context, payment *entity.Payment) error
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	FindByMemberID(ctx context.Context, memberID string) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) CreateWithRenewal(ctx context.Context, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO payments (id, member_id, plan_id, amount, method, paid_on, expires_on, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, insertQuery,
		payment.ID,
		payment.MemberID,
		payment.PlanID,
		payment.Amount,
		payment.Method,
		payment.PaidOn,
		payment.ExpiresOn,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("member_id", payment.MemberID),
			zap.Int64("plan_id", payment.PlanID),
		)
		if database.IsTransient(err) {
			return apperr.Transient(err, "insert payment for member %s", payment.MemberID)
		}
		return fmt.Errorf("insert payment for member %s: %w", payment.MemberID, err)
	}

	updateQuery := `UPDATE members SET expires_on = $2 WHERE id = $1`

	result, err := tx.Exec(ctx, updateQuery, payment.MemberID, payment.ExpiresOn)
	if err != nil {
		r.log.Error("Failed to update member expiration in payment transaction",
			zap.Error(err),
			zap.String("member_id", payment.MemberID),
		)
		if database.IsTransient(err) {
			return apperr.Transient(err, "renew member %s", payment.MemberID)
		}
		return fmt.Errorf("renew member %s: %w", payment.MemberID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("member %s not found", payment.MemberID)
	}

	if err := tx.Commit(ctx); err != nil {
		// Serialization failures surface at commit.
		if database.IsTransient(err) {
			return apperr.Transient(err, "commit payment for member %s", payment.MemberID)
		}
		return fmt.Errorf("commit payment transaction: %w", err)
	}

	return nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, member_id, plan_id, amount, method, paid_on, expires_on, status, created_at
		FROM payments
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.MemberID,
			&payment.PlanID,
			&payment.Amount,
			&payment.Method,
			&payment.PaidOn,
			&payment.ExpiresOn,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) FindByMemberID(ctx context.Context, memberID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, member_id, plan_id, amount, method, paid_on, expires_on, status, created_at
		FROM payments
		WHERE member_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		r.log.Error("Failed to list payments by member",
			zap.Error(err),
			zap.String("member_id", memberID),
		)
		return nil, fmt.Errorf("list payments for member %s: %w", memberID, err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.MemberID,
			&payment.PlanID,
			&payment.Amount,
			&payment.Method,
			&payment.PaidOn,
			&payment.ExpiresOn,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}
