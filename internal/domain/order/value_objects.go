package order

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrEmptyItemName     = errors.New("order item name cannot be empty")
	ErrNegativeItemPrice = errors.New("order item price cannot be negative")
	ErrInvalidQuantity   = errors.New("order item quantity must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusCancelled Status = "cancelled"
	StatusDelivered Status = "delivered"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusPreparing, StatusCancelled, StatusDelivered:
		return Status(value), nil
	default:
		return Status(""), ErrInvalidStatus
	}
}

// CanTransitionTo encodes the order lifecycle:
// pending -> preparing | cancelled, preparing -> delivered | cancelled.
// Delivered and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPreparing || next == StatusCancelled
	case StatusPreparing:
		return next == StatusDelivered || next == StatusCancelled
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Item is a line-item snapshot. Name and unit price are copied from the
// product at order time so historical orders stay immutable when the catalog
// changes.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int32
}

func NewItem(name string, unitPrice decimal.Decimal, quantity int32) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyItemName
	}
	if unitPrice.IsNegative() {
		return Item{}, ErrNegativeItemPrice
	}
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (i Item) Name() string               { return i.name }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i Item) Quantity() int32            { return i.quantity }

func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt32(i.quantity))
}
