package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuaderno/internal/entity"
	"cuaderno/internal/usecase"
)

const (
	getSubscription = `SELECT user_id, plan, status, period_start
FROM subscriptions
WHERE user_id = $1`

	upsertSubscription = `INSERT INTO subscriptions (user_id, plan, status, period_start, period_end, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id) DO UPDATE
SET plan = EXCLUDED.plan,
    status = EXCLUDED.status,
    period_start = EXCLUDED.period_start,
    period_end = EXCLUDED.period_end,
    updated_at = EXCLUDED.updated_at`
)

type SubRepository struct {
	pool *pgxpool.Pool
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{
		pool: pool,
	}
}

func (r *SubRepository) GetSubByUserID(ctx context.Context, userID string) (*entity.Subscription, error) {
	var (
		sub    entity.Subscription
		status string
	)
	err := r.pool.QueryRow(ctx, getSubscription, userID).Scan(&sub.UserID, &sub.Plan, &status, &sub.PeriodStart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by user_id=%s: %w", userID, err)
	}
	sub.Status = entity.Status(status)
	sub.PeriodStart = sub.PeriodStart.UTC()
	return &sub, nil
}

func (r *SubRepository) SetSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil || sub.UserID == "" {
		return fmt.Errorf("set sub: %w", usecase.ErrInvalidUser)
	}

	_, err := r.pool.Exec(ctx, upsertSubscription,
		sub.UserID,
		sub.Plan,
		string(sub.Status),
		sub.PeriodStart,
		sub.PeriodEnd(),
	)
	if err != nil {
		return fmt.Errorf("set sub: %w", err)
	}
	return nil
}
