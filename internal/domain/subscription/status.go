package subscription

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errors.New("invalid subscription status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusTrial     Status = "trial"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusActive, StatusCancelled, StatusExpired, StatusTrial:
		return Status(value), nil
	default:
		return Status(""), ErrInvalidStatus
	}
}

// InitialStatus resolves the status of a freshly created subscription: a
// zero-amount checkout activates immediately, anything payable stays pending
// until the payment provider confirms.
func InitialStatus(finalAmount decimal.Decimal) Status {
	if finalAmount.IsZero() {
		return StatusActive
	}
	return StatusPending
}

func (s Status) String() string {
	return string(s)
}
