package subscription

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is a tenant's enrollment in a plan. Exactly one current
// subscription is tracked per owner via the owner's back-reference.
type Subscription struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	hotelID       uuid.UUID
	planID        uuid.UUID
	status        Status
	startsAt      time.Time
	endsAt        time.Time
	paymentMethod string
	autoRenew     bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSubscription(
	ownerID, hotelID, planID uuid.UUID,
	finalAmount decimal.Decimal,
	durationDays int32,
	paymentMethod string,
	now time.Time,
) *Subscription {
	return &Subscription{
		id:            uuid.New(),
		ownerID:       ownerID,
		hotelID:       hotelID,
		planID:        planID,
		status:        InitialStatus(finalAmount),
		startsAt:      now,
		endsAt:        now.AddDate(0, 0, int(durationDays)),
		paymentMethod: paymentMethod,
		autoRenew:     true,
	}
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive || s.status == StatusTrial
}

func (s *Subscription) ID() uuid.UUID         { return s.id }
func (s *Subscription) OwnerID() uuid.UUID    { return s.ownerID }
func (s *Subscription) HotelID() uuid.UUID    { return s.hotelID }
func (s *Subscription) PlanID() uuid.UUID     { return s.planID }
func (s *Subscription) Status() Status        { return s.status }
func (s *Subscription) StartsAt() time.Time   { return s.startsAt }
func (s *Subscription) EndsAt() time.Time     { return s.endsAt }
func (s *Subscription) PaymentMethod() string { return s.paymentMethod }
func (s *Subscription) AutoRenew() bool       { return s.autoRenew }
func (s *Subscription) CreatedAt() time.Time  { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time  { return s.updatedAt }
