package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	FindByID(ctx context.Context, id string) (*entity.Member, error)
	FindAll(ctx context.Context) ([]*entity.Member, error)
	UpdateExpiration(ctx context.Context, id string, expiresOn string) error
}

type memberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMemberRepository(db database.PgxIface, log *zap.Logger) MemberRepository {
	return &memberRepository{
		db:  db,
		log: log.With(zap.String("repository", "member")),
	}
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	query := `
		INSERT INTO members (id, name, phone, expires_on, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Phone,
		member.ExpiresOn,
		member.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create member",
			zap.Error(err),
			zap.String("member_id", member.ID),
		)
		// A concurrent registration can slip past the service's
		// existence check; the PK violation still means "taken".
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("member %s already exists", member.ID)
		}
		return fmt.Errorf("create member %s: %w", member.ID, err)
	}

	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	query := `
		SELECT id, name, phone, expires_on, created_at
		FROM members
		WHERE id = $1
	`

	var member entity.Member
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Phone,
		&member.ExpiresOn,
		&member.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find member by ID",
			zap.Error(err),
			zap.String("member_id", id),
		)
		return nil, fmt.Errorf("find member by ID %s: %w", id, err)
	}

	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	query := `
		SELECT id, name, phone, expires_on, created_at
		FROM members
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list members", zap.Error(err))
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		var member entity.Member
		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Phone,
			&member.ExpiresOn,
			&member.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan member row", zap.Error(err))
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		members = append(members, &member)
	}

	return members, nil
}

func (r *memberRepository) UpdateExpiration(ctx context.Context, id string, expiresOn string) error {
	query := `UPDATE members SET expires_on = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, expiresOn)
	if err != nil {
		r.log.Error("Failed to update member expiration",
			zap.Error(err),
			zap.String("member_id", id),
			zap.String("expires_on", expiresOn),
		)
		return fmt.Errorf("update member %s expiration: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("member %s not found", id)
	}

	return nil
}
