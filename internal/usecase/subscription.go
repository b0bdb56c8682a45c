package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"cuaderno/internal/entity"
)

// Subscription coordinates subscription use cases via the repository and the identity provider
type Subscription struct {
	Sr  SubscriptionRepository
	Idp IdentityProvider

	portalURL string
	now       func() time.Time
	sessionID func() string
}

// Option configures a Subscription use case
type Option func(*Subscription)

// WithIdentityProvider mirrors every write into the provider's user metadata
// and lets reads fall back to it.
func WithIdentityProvider(p IdentityProvider) Option {
	return func(s *Subscription) {
		if p != nil {
			s.Idp = p
		}
	}
}

// WithPortalURL sets the billing portal the BillingPortal use case points to.
func WithPortalURL(u string) Option {
	return func(s *Subscription) {
		s.portalURL = strings.TrimSpace(u)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Subscription) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSessionIDs replaces the checkout session id generator.
func WithSessionIDs(gen func() string) Option {
	return func(s *Subscription) {
		if gen != nil {
			s.sessionID = gen
		}
	}
}

// NewSubscription creates a use case service with the given repository
func NewSubscription(sr SubscriptionRepository, options ...Option) *Subscription {
	s := &Subscription{
		Sr:        sr,
		now:       time.Now,
		sessionID: uuid.NewString,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// GetSubscription returns the stored record, the provider's copy, or the default free plan
func (s *Subscription) GetSubscription(ctx context.Context, userID string) (*entity.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUser
	}

	sub, err := s.Sr.GetSubByUserID(ctx, userID)
	switch {
	case err == nil:
		return sub, nil
	case !errors.Is(err, ErrSubscriptionNotFound):
		return nil, err
	}

	if s.Idp != nil {
		sub, err = s.Idp.GetSubscription(ctx, userID)
		switch {
		case err == nil:
			return sub, nil
		case !errors.Is(err, ErrSubscriptionNotFound):
			return nil, fmt.Errorf("%w: %w", ErrProvider, err)
		}
	}

	return entity.DefaultSubscription(userID, s.now()), nil
}

// UpdateSubscription replaces the user's record with an active one on planID starting now
func (s *Subscription) UpdateSubscription(ctx context.Context, userID, planID string) (*entity.Subscription, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, fmt.Errorf("%w: empty plan id", ErrInvalidPlan)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUser
	}

	sub := entity.NewSubscription(userID, planID, entity.StatusActive, s.now())
	if err := s.save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateCheckout activates planID for the user and returns where the client should be redirected.
// Payment collection is not wired, so the redirect goes straight to the success URL.
func (s *Subscription) CreateCheckout(ctx context.Context, userID string, req CheckoutRequest) (*Checkout, error) {
	planID := strings.TrimSpace(req.PlanID)
	if planID == "" {
		return nil, fmt.Errorf("%w: empty plan id", ErrInvalidPlan)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUser
	}
	success, err := parseRedirectURL(req.SuccessURL)
	if err != nil {
		return nil, fmt.Errorf("%w: success url: %v", ErrInvalidCheckout, err)
	}
	if _, err := parseRedirectURL(req.CancelURL); err != nil {
		return nil, fmt.Errorf("%w: cancel url: %v", ErrInvalidCheckout, err)
	}

	sub := entity.NewSubscription(userID, planID, entity.StatusActive, s.now())
	if err := s.save(ctx, sub); err != nil {
		return nil, err
	}

	sessionID := s.sessionID()
	q := success.Query()
	q.Set("session_id", sessionID)
	q.Set("plan", planID)
	success.RawQuery = q.Encode()

	return &Checkout{
		SessionID:    sessionID,
		URL:          success.String(),
		Subscription: sub,
	}, nil
}

// CancelSubscription marks the user's current record canceled, keeping its plan and period
func (s *Subscription) CancelSubscription(ctx context.Context, userID string) (*entity.Subscription, error) {
	current, err := s.GetSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	canceled := *current
	canceled.Status = entity.StatusCanceled
	if err := s.save(ctx, &canceled); err != nil {
		return nil, err
	}
	return &canceled, nil
}

// BillingPortal returns the URL of the billing portal for the user
func (s *Subscription) BillingPortal(_ context.Context, userID, returnURL string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidUser
	}
	returnURL = strings.TrimSpace(returnURL)
	if s.portalURL == "" {
		if returnURL == "" {
			return "", fmt.Errorf("%w: no billing portal configured", ErrInvalidCheckout)
		}
		return returnURL, nil
	}

	u, err := url.Parse(s.portalURL)
	if err != nil {
		return "", fmt.Errorf("billing portal url: %w", err)
	}
	if returnURL != "" {
		q := u.Query()
		q.Set("return_url", returnURL)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// save writes the provider metadata first so a provider failure leaves the store untouched
func (s *Subscription) save(ctx context.Context, sub *entity.Subscription) error {
	if s.Idp != nil {
		if err := s.Idp.SetSubscription(ctx, sub); err != nil {
			return fmt.Errorf("%w: %w", ErrProvider, err)
		}
	}
	if err := s.Sr.SetSub(ctx, sub); err != nil {
		return fmt.Errorf("set sub: %w", err)
	}
	return nil
}

func parseRedirectURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}
