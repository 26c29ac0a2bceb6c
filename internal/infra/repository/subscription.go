package repository

import (
	"context"

	"roomcart/internal/domain/subscription"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/usecase/shared"
)

type SubscriptionRepository struct {
	db db.DBTX
}

func NewSubscriptionRepository(dbtx db.DBTX) shared.SubscriptionRepository {
	return &SubscriptionRepository{db: dbtx}
}

const insertSubscriptionSQL = `
INSERT INTO subscriptions (id, owner_id, hotel_id, plan_id, status, starts_at, ends_at, payment_method, auto_renew)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	_, err := r.db.Exec(ctx, insertSubscriptionSQL,
		s.ID(),
		s.OwnerID(),
		s.HotelID(),
		s.PlanID(),
		s.Status().String(),
		s.StartsAt(),
		s.EndsAt(),
		s.PaymentMethod(),
		s.AutoRenew(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create subscription", err, infra.KindFromPgError(err))
	}
	return nil
}
