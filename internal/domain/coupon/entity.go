package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon has expired")
)

type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	isActive  bool
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	kind string,
	value decimal.Decimal,
	isActive bool,
	expiresAt *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(kind, value)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		isActive:  isActive,
		expiresAt: expiresAt,
	}, nil
}

func (c *Coupon) IsRedeemableAt(t time.Time) bool {
	if !c.isActive {
		return false
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return false
	}
	return true
}

func (c *Coupon) ValidateRedemption(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ApplyDiscount(base decimal.Decimal) decimal.Decimal {
	return c.discount.Apply(base)
}

func (c *Coupon) DiscountAmount(base decimal.Decimal) decimal.Decimal {
	return c.discount.Amount(base)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) IsActive() bool        { return c.isActive }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time  { return c.updatedAt }
