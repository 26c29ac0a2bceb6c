package repository

import (
	"context"

	"roomcart/internal/domain/owner"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/usecase/shared"

	"github.com/google/uuid"
)

type OwnerRepository struct {
	db db.DBTX
}

func NewOwnerRepository(dbtx db.DBTX) shared.OwnerRepository {
	return &OwnerRepository{db: dbtx}
}

const insertOwnerSQL = `
INSERT INTO owners (id, email, password_hash, first_name, last_name, hotel_name_hint)
VALUES ($1, $2, $3, $4, $5, $6)`

// Create relies on the owners_email_key unique constraint for duplicate
// detection; callers translate DUPLICATE_KEY into their own conflict error.
func (r *OwnerRepository) Create(ctx context.Context, o *owner.Owner) error {
	_, err := r.db.Exec(ctx, insertOwnerSQL,
		o.ID(),
		o.Email().Value(),
		o.PasswordHash(),
		o.FirstName(),
		o.LastName(),
		o.HotelNameHint(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create owner", err, infra.KindFromPgError(err))
	}
	return nil
}

const setCurrentSubscriptionSQL = `
UPDATE owners SET current_subscription_id = $2, updated_at = now()
WHERE id = $1`

func (r *OwnerRepository) SetCurrentSubscription(ctx context.Context, ownerID, subscriptionID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, setCurrentSubscriptionSQL, ownerID, subscriptionID)
	if err != nil {
		return infra.WrapRepoErr("failed to set current subscription", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found", nil, infra.KindNotFound)
	}
	return nil
}
