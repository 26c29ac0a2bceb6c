//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "roomcart/internal/domain/coupon"
	"roomcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID        uuid.UUID
	Code      string
	Kind      string
	Value     decimal.Decimal
	IsActive  bool
	ExpiresAt *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:       uuid.New(),
		Code:     "SAVE20",
		Kind:     string(domcoupon.KindPercentage),
		Value:    decimal.NewFromInt(20),
		IsActive: true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.ID, b.Code, b.Kind, b.Value, b.IsActive, b.ExpiresAt)
}

func (b *CouponBuilder) BuildSnapshot() *commands.CouponSnapshot {
	return &commands.CouponSnapshot{
		ID:        b.ID,
		Code:      b.Code,
		Kind:      b.Kind,
		Value:     b.Value,
		IsActive:  b.IsActive,
		ExpiresAt: b.ExpiresAt,
	}
}
