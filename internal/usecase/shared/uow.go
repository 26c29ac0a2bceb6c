package shared

import (
	"context"

	"roomcart/internal/domain/hotel"
	"roomcart/internal/domain/order"
	"roomcart/internal/domain/owner"
	"roomcart/internal/domain/product"
	"roomcart/internal/domain/subscription"
	"roomcart/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside a single database transaction. The
// provisioning sequence (owner + hotel + subscription + back-reference)
// either fully commits or leaves no partial tenant.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write-side repositories bound to the open transaction.
type Tx interface {
	DB() db.DBTX
	Owners() OwnerRepository
	Hotels() HotelRepository
	Subscriptions() SubscriptionRepository
	Products() ProductRepository
	Orders() OrderRepository
}

type OwnerRepository interface {
	Create(ctx context.Context, o *owner.Owner) error
	SetCurrentSubscription(ctx context.Context, ownerID, subscriptionID uuid.UUID) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *subscription.Subscription) error
}

type ProductRepository interface {
	CreateBatch(ctx context.Context, products []*product.Product) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindStatusForUpdate(ctx context.Context, id uuid.UUID) (order.Status, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}
