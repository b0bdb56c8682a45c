package memory

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"cuaderno/internal/entity"
	"cuaderno/internal/usecase"
)

// SubRepository keeps subscriptions in process memory. Records never expire and
// are lost on restart. Safe for concurrent use; the last Set for a user wins.
type SubRepository struct {
	items *cache.Cache
}

func NewSubRepository() *SubRepository {
	return &SubRepository{
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SubRepository) GetSubByUserID(_ context.Context, userID string) (*entity.Subscription, error) {
	v, ok := r.items.Get(userID)
	if !ok {
		return nil, usecase.ErrSubscriptionNotFound
	}
	sub := v.(entity.Subscription)
	return &sub, nil
}

func (r *SubRepository) SetSub(_ context.Context, sub *entity.Subscription) error {
	if sub == nil || sub.UserID == "" {
		return fmt.Errorf("set sub: %w", usecase.ErrInvalidUser)
	}
	r.items.Set(sub.UserID, *sub, cache.NoExpiration)
	return nil
}

// Len reports how many users have a stored record.
func (r *SubRepository) Len() int {
	return r.items.ItemCount()
}
