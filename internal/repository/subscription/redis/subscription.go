package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/redis/go-redis/v9"

	"cuaderno/internal/entity"
	"cuaderno/internal/entity/generated"
	"cuaderno/internal/usecase"
)

const defaultKeyPrefix = "cuaderno:subscription:"

// SubRepository stores one JSON document per user under prefix+userID.
type SubRepository struct {
	client *redis.Client
	prefix string
}

func NewSubRepository(client *redis.Client, prefix string) *SubRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &SubRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *SubRepository) key(userID string) string {
	return r.prefix + userID
}

func (r *SubRepository) GetSubByUserID(ctx context.Context, userID string) (*entity.Subscription, error) {
	raw, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by user_id=%s: %w", userID, err)
	}

	var rec generated.SubscriptionRecord
	if err := rec.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("decode sub user_id=%s: %w", userID, err)
	}
	if err := rec.Validate(strfmt.Default); err != nil {
		return nil, fmt.Errorf("decode sub user_id=%s: %w", userID, err)
	}
	return entity.FromRecord(userID, &rec), nil
}

func (r *SubRepository) SetSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil || sub.UserID == "" {
		return fmt.Errorf("set sub: %w", usecase.ErrInvalidUser)
	}
	if err := r.client.Set(ctx, r.key(sub.UserID), entity.ToRecord(sub), 0).Err(); err != nil {
		return fmt.Errorf("set sub: %w", err)
	}
	return nil
}

// Ping checks the connection to the server.
func (r *SubRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
