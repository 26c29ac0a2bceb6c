package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderView struct {
	ID         uuid.UUID        `json:"id"`
	Number     string           `json:"number"`
	HotelID    uuid.UUID        `json:"hotel_id"`
	GuestName  string           `json:"guest_name"`
	RoomNumber string           `json:"room_number"`
	Phone      string           `json:"phone"`
	Total      decimal.Decimal  `json:"total"`
	Status     string           `json:"status"`
	Items      []*OrderItemView `json:"items"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type OrderItemView struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderViewStore
}

func NewOrderQueries(store OrderViewStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.FindByID(ctx, id)
}
