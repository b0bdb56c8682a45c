package entity

import (
	"time"
)

// Status - subscription status tag
type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

const (
	// DefaultPlan - plan assigned to users without a stored subscription
	DefaultPlan = "free"
	// PeriodDays - length of a billing period
	PeriodDays = 30
)

// Subscription - latest subscription record of a user
type Subscription struct {
	// UserID - opaque identifier supplied by the identity provider
	UserID string
	// Plan - pricing tier identifier (free, pro, ...)
	Plan string
	// Status - active or canceled
	Status Status
	// PeriodStart - start of the current billing period
	PeriodStart time.Time
}

// PeriodEnd is always PeriodStart plus one billing period.
func (s Subscription) PeriodEnd() time.Time {
	return s.PeriodStart.AddDate(0, 0, PeriodDays)
}

// NewSubscription builds a record for userID whose period starts at start.
func NewSubscription(userID, plan string, status Status, start time.Time) *Subscription {
	return &Subscription{
		UserID:      userID,
		Plan:        plan,
		Status:      status,
		PeriodStart: start.UTC(),
	}
}

// DefaultSubscription is the record reported for users that have none stored.
func DefaultSubscription(userID string, now time.Time) *Subscription {
	return NewSubscription(userID, DefaultPlan, StatusActive, now)
}
