//go:build unit || e2e

package builder

import (
	reqdto "roomcart/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutBuilder struct {
	PlanID        uuid.UUID
	HotelID       uuid.UUID
	Email         string
	FirstName     string
	LastName      string
	Password      string
	HotelName     string
	Currency      string
	RoomNumber    string
	CouponCode    string
	PaymentMethod string
	Items         []reqdto.CheckoutItem
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		PlanID:        uuid.New(),
		HotelID:       uuid.New(),
		Email:         "owner@example.com",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Password:      "s3cret-password",
		HotelName:     "Seaside Resort",
		Currency:      "USD",
		RoomNumber:    "204",
		PaymentMethod: "card",
		Items: []reqdto.CheckoutItem{
			{Name: "Club Sandwich", Price: decimal.NewFromFloat(9.90), Quantity: 1},
			{Name: "Bottled Water", Price: decimal.NewFromFloat(2.50), Quantity: 2},
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildSubscriptionRequest() reqdto.CheckoutRequest {
	req := reqdto.CheckoutRequest{
		Type:   reqdto.CheckoutTypeSubscription,
		PlanID: &b.PlanID,
		UserInfo: reqdto.UserInfo{
			Email:     b.Email,
			FirstName: b.FirstName,
			LastName:  b.LastName,
		},
	}
	if b.Password != "" {
		req.UserInfo.Password = &b.Password
	}
	if b.HotelName != "" {
		req.UserInfo.HotelName = &b.HotelName
	}
	if b.Currency != "" {
		req.UserInfo.Currency = &b.Currency
	}
	if b.CouponCode != "" {
		req.CouponID = &b.CouponCode
	}
	if b.PaymentMethod != "" {
		req.PaymentMethod = &b.PaymentMethod
	}
	return req
}

func (b *CheckoutBuilder) BuildHotelOrderRequest() reqdto.CheckoutRequest {
	req := reqdto.CheckoutRequest{
		Type:    reqdto.CheckoutTypeHotelOrder,
		HotelID: &b.HotelID,
		UserInfo: reqdto.UserInfo{
			FirstName: b.FirstName,
			LastName:  b.LastName,
		},
		Items: b.Items,
	}
	if b.RoomNumber != "" {
		req.UserInfo.RoomNumber = &b.RoomNumber
	}
	return req
}

func (b *CheckoutBuilder) BuildSubscriptionIntent() reqdto.SubscriptionCheckout {
	return reqdto.SubscriptionCheckout{
		PlanID:        b.PlanID,
		Email:         b.Email,
		Password:      b.Password,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		HotelName:     b.HotelName,
		Currency:      b.Currency,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *CheckoutBuilder) BuildGuestOrderIntent() reqdto.GuestOrderCheckout {
	return reqdto.GuestOrderCheckout{
		HotelID:    b.HotelID,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		RoomNumber: b.RoomNumber,
		Items:      b.Items,
	}
}
