package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountKind    = errors.New("unknown discount kind")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountKind string

const (
	KindPercentage  DiscountKind = "percentage"
	KindFixedAmount DiscountKind = "fixed_amount"
)

type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

func NewPercentageDiscount(percent decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: KindPercentage, value: percent}, nil
}

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: KindFixedAmount, value: amount}, nil
}

func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountKind(kind) {
	case KindPercentage:
		return NewPercentageDiscount(value)
	case KindFixedAmount:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountKind
	}
}

func (d Discount) Kind() DiscountKind     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

func (d Discount) IsPercentage() bool {
	return d.kind == KindPercentage
}

// Apply returns the discounted price, rounded to two decimal places and
// never below zero.
func (d Discount) Apply(base decimal.Decimal) decimal.Decimal {
	result := base.Sub(d.Amount(base))
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// Amount returns the discount portion for the given base price, capped at the
// base price itself.
func (d Discount) Amount(base decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	if d.IsPercentage() {
		amount = base.Mul(d.value).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		amount = d.value.Round(2)
	}

	if amount.GreaterThan(base) {
		return base
	}
	return amount
}
