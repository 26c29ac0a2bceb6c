package repository

import (
	"context"

	"roomcart/internal/domain/order"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/pkg/pgconv"
	"roomcart/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) shared.OrderRepository {
	return &OrderRepository{db: dbtx}
}

const insertOrderSQL = `
INSERT INTO orders (id, number, hotel_id, guest_first_name, guest_last_name, room_number, phone_number, total, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const insertOrderItemSQL = `
INSERT INTO order_items (id, order_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)`

// Create persists the order header and its line items. Both run against the
// same transaction, so a failed item insert rolls back the header too.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	guest := o.Guest()
	_, err := r.db.Exec(ctx, insertOrderSQL,
		o.ID(),
		o.Number(),
		o.HotelID(),
		guest.FirstName,
		guest.LastName,
		guest.RoomNumber,
		guest.PhoneNumber,
		o.Total(),
		o.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err, infra.KindFromPgError(err))
	}

	for _, item := range o.Items() {
		_, err := r.db.Exec(ctx, insertOrderItemSQL,
			uuid.New(),
			o.ID(),
			item.Name(),
			item.UnitPrice(),
			item.Quantity(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err, infra.KindFromPgError(err))
		}
	}
	return nil
}

const findOrderStatusForUpdateSQL = `
SELECT status FROM orders
WHERE id = $1
FOR UPDATE`

// FindStatusForUpdate locks the order row so the status transition check and
// the subsequent update observe the same state under concurrency.
func (r *OrderRepository) FindStatusForUpdate(ctx context.Context, id uuid.UUID) (order.Status, error) {
	var raw string
	if err := r.db.QueryRow(ctx, findOrderStatusForUpdateSQL, id).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return order.Status(""), infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return order.Status(""), infra.WrapRepoErr("failed to load order status", err)
	}
	status, err := order.NewStatus(raw)
	if err != nil {
		return order.Status(""), infra.WrapRepoErr("stored order status is invalid", err)
	}
	return status, nil
}

const updateOrderStatusSQL = `
UPDATE orders SET status = $2, updated_at = now()
WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
