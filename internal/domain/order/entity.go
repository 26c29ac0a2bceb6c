package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrMissingGuestName = errors.New("guest name is required")
)

type Guest struct {
	FirstName   string
	LastName    string
	RoomNumber  string
	PhoneNumber string
}

// Order is a guest purchase against a hotel. The total is fixed at creation
// time as the sum of its items and is never recomputed.
type Order struct {
	id        uuid.UUID
	number    string
	hotelID   uuid.UUID
	guest     Guest
	items     []Item
	total     decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewOrder(hotelID uuid.UUID, guest Guest, items []Item, now time.Time) (*Order, error) {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	if guest.FirstName == "" || guest.LastName == "" {
		return nil, ErrMissingGuestName
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	id := uuid.New()
	return &Order{
		id:      id,
		number:  deriveNumber(id, now),
		hotelID: hotelID,
		guest:   guest,
		items:   items,
		total:   total.Round(2),
		status:  StatusPending,
	}, nil
}

// deriveNumber builds the short human-facing order reference printed on
// guest confirmations.
func deriveNumber(id uuid.UUID, now time.Time) string {
	raw := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "ORD-" + now.Format("20060102") + "-" + raw[:6]
}

func (o *Order) Transition(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.status = next
	return nil
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) Number() string         { return o.number }
func (o *Order) HotelID() uuid.UUID     { return o.hotelID }
func (o *Order) Guest() Guest           { return o.guest }
func (o *Order) Items() []Item          { return o.items }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
