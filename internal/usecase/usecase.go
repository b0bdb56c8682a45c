package usecase

import (
	"context"
	"errors"

	"cuaderno/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase cuaderno/internal/usecase SubscriptionRepository,IdentityProvider

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidPlan          = errors.New("invalid plan")
	ErrInvalidUser          = errors.New("invalid user")
	ErrInvalidCheckout      = errors.New("invalid checkout")
	ErrProvider             = errors.New("identity provider failure")
)

// SubscriptionRepository - latest subscription record per user.
// Implementations must be safe for concurrent use; Set is last-write-wins.
type SubscriptionRepository interface {
	// GetSubByUserID - returns the stored record or ErrSubscriptionNotFound
	GetSubByUserID(ctx context.Context, userID string) (*entity.Subscription, error)
	// SetSub - replaces any stored record for s.UserID
	SetSub(ctx context.Context, s *entity.Subscription) error
}

// IdentityProvider - subscription metadata kept by the external identity/billing provider
type IdentityProvider interface {
	// GetSubscription - reads the user's subscription metadata or ErrSubscriptionNotFound
	GetSubscription(ctx context.Context, userID string) (*entity.Subscription, error)
	// SetSubscription - writes the user's subscription metadata
	SetSubscription(ctx context.Context, s *entity.Subscription) error
}

// CheckoutRequest - plan purchase request coming from the dashboard
type CheckoutRequest struct {
	// PlanID - plan the user is buying
	PlanID string
	// SuccessURL - where the user lands after paying
	SuccessURL string
	// CancelURL - where the user lands after abandoning the checkout
	CancelURL string
}

// Checkout - result of a started checkout
type Checkout struct {
	// SessionID - identifier of the checkout session
	SessionID string
	// URL - redirect target for the client
	URL string
	// Subscription - record written for the user
	Subscription *entity.Subscription
}
