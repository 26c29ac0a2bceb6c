package response

import (
	"time"

	"roomcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout responses carry an explicit success flag; clients branch on it
// before inspecting the payload.

type SubscriptionCheckoutResponse struct {
	Success           bool                 `json:"success"`
	User              UserResponse         `json:"user"`
	Hotel             HotelResponse        `json:"hotel"`
	Subscription      SubscriptionResponse `json:"subscription"`
	Checkout          CheckoutSummary      `json:"checkout"`
	RequiresPayment   bool                 `json:"requiresPayment"`
	GeneratedPassword bool                 `json:"generatedPassword"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type HotelResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Currency string    `json:"currency"`
}

type SubscriptionResponse struct {
	ID       uuid.UUID `json:"id"`
	PlanID   uuid.UUID `json:"planId"`
	PlanName string    `json:"planName"`
	Status   string    `json:"status"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type CheckoutSummary struct {
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"finalAmount"`
	AppliedCoupon *string         `json:"appliedCoupon,omitempty"`
}

func FromSubscriptionCheckout(result *commands.SubscriptionCheckoutResult) SubscriptionCheckoutResponse {
	return SubscriptionCheckoutResponse{
		Success: true,
		User: UserResponse{
			ID:        result.Owner.ID,
			Email:     result.Owner.Email,
			FirstName: result.Owner.FirstName,
			LastName:  result.Owner.LastName,
		},
		Hotel: HotelResponse{
			ID:       result.Hotel.ID,
			Name:     result.Hotel.Name,
			Slug:     result.Hotel.Slug,
			Currency: result.Hotel.Currency,
		},
		Subscription: SubscriptionResponse{
			ID:       result.Subscription.ID,
			PlanID:   result.Subscription.PlanID,
			PlanName: result.Subscription.PlanName,
			Status:   result.Subscription.Status,
			StartsAt: result.Subscription.StartsAt,
			EndsAt:   result.Subscription.EndsAt,
		},
		Checkout: CheckoutSummary{
			BaseAmount:    result.Pricing.BaseAmount,
			Discount:      result.Pricing.Discount,
			FinalAmount:   result.Pricing.FinalAmount,
			AppliedCoupon: result.Pricing.AppliedCoupon,
		},
		RequiresPayment:   result.RequiresPayment,
		GeneratedPassword: result.GeneratedPassword,
	}
}

type GuestOrderCheckoutResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

type OrderResponse struct {
	ID     uuid.UUID           `json:"id"`
	Number string              `json:"number"`
	Total  decimal.Decimal     `json:"total"`
	Status string              `json:"status"`
	Items  []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
}

func FromGuestOrder(result *commands.GuestOrderResult) GuestOrderCheckoutResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return GuestOrderCheckoutResponse{
		Success: true,
		Order: OrderResponse{
			ID:     result.OrderID,
			Number: result.Number,
			Total:  result.Total,
			Status: result.Status,
			Items:  items,
		},
	}
}

// CheckoutErrorResponse is the failure envelope of the checkout endpoint.
type CheckoutErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func NewCheckoutError(msg string, details any) CheckoutErrorResponse {
	return CheckoutErrorResponse{Success: false, Error: msg, Details: details}
}
