package entity

import (
	"time"

	"github.com/go-openapi/strfmt"

	"cuaderno/internal/entity/generated"
)

// ToRecord converts a subscription into its wire representation.
func ToRecord(s *Subscription) *generated.SubscriptionRecord {
	plan := s.Plan
	status := string(s.Status)
	start := strfmt.DateTime(s.PeriodStart)
	return &generated.SubscriptionRecord{
		UserID:      s.UserID,
		Plan:        &plan,
		Status:      &status,
		PeriodStart: &start,
		PeriodEnd:   strfmt.DateTime(s.PeriodEnd()),
	}
}

// FromRecord converts a validated wire record back into a subscription.
// The record's periodEnd is ignored since it is derived from periodStart.
func FromRecord(userID string, r *generated.SubscriptionRecord) *Subscription {
	s := &Subscription{UserID: userID}
	if r.UserID != "" && userID == "" {
		s.UserID = r.UserID
	}
	if r.Plan != nil {
		s.Plan = *r.Plan
	}
	if r.Status != nil {
		s.Status = Status(*r.Status)
	}
	if r.PeriodStart != nil {
		s.PeriodStart = time.Time(*r.PeriodStart).UTC()
	}
	return s
}
