package readstore

import (
	"context"
	"strings"

	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/pkg/pgconv"
	"roomcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderByIDSQL = `
SELECT id, number, hotel_id, guest_first_name, guest_last_name, room_number, phone_number, total, status, created_at, updated_at
FROM orders
WHERE id = $1`

const findOrderItemsSQL = `
SELECT name, unit_price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		v         queries.OrderView
		firstName string
		lastName  string
	)
	err := s.db.QueryRow(ctx, findOrderByIDSQL, id).Scan(
		&v.ID,
		&v.Number,
		&v.HotelID,
		&firstName,
		&lastName,
		&v.RoomNumber,
		&v.Phone,
		&v.Total,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	v.GuestName = strings.TrimSpace(firstName + " " + lastName)

	rows, err := s.db.Query(ctx, findOrderItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	items := make([]*queries.OrderItemView, 0)
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	v.Items = items

	return &v, nil
}
