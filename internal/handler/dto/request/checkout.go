package request

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the single checkout endpoint's body. The `type` field
// discriminates between a subscription purchase and a guest room-service
// order; Classify turns the raw body into one of the two typed intents.
type CheckoutRequest struct {
	Type          string         `json:"type" binding:"required"`
	PlanID        *uuid.UUID     `json:"planId,omitempty"`
	HotelID       *uuid.UUID     `json:"hotelId,omitempty"`
	UserInfo      UserInfo       `json:"userInfo"`
	Items         []CheckoutItem `json:"items,omitempty"`
	CouponID      *string        `json:"couponId,omitempty"` // carries the coupon code, not a UUID
	PaymentMethod *string        `json:"paymentMethod,omitempty"`
}

type UserInfo struct {
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Password    *string `json:"password,omitempty"`
	HotelName   *string `json:"hotelName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	RoomNumber  *string `json:"roomNumber,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type CheckoutItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

const (
	CheckoutTypeSubscription = "subscription"
	CheckoutTypeHotelOrder   = "hotel_order"
)

// ValidationError carries per-field messages back to the handler, which
// reports them as a 400 before any write happens.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid checkout request"
}

// CheckoutIntent is the classified form of a checkout body.
type CheckoutIntent interface {
	isCheckoutIntent()
}

type SubscriptionCheckout struct {
	PlanID        uuid.UUID
	Email         string
	Password      string // empty means "generate one"
	FirstName     string
	LastName      string
	HotelName     string
	Phone         string
	Address       string
	City          string
	Country       string
	Currency      string
	CouponCode    *string
	PaymentMethod string
}

func (SubscriptionCheckout) isCheckoutIntent() {}

type GuestOrderCheckout struct {
	HotelID     uuid.UUID
	FirstName   string
	LastName    string
	RoomNumber  string
	PhoneNumber string
	Items       []CheckoutItem
}

func (GuestOrderCheckout) isCheckoutIntent() {}

// Classify validates the discriminator and the per-type required fields.
// It never touches the database.
func (r CheckoutRequest) Classify() (CheckoutIntent, error) {
	switch r.Type {
	case CheckoutTypeSubscription:
		return r.classifySubscription()
	case CheckoutTypeHotelOrder:
		return r.classifyHotelOrder()
	default:
		return nil, &ValidationError{Details: map[string]string{
			"type": "must be one of: subscription, hotel_order",
		}}
	}
}

func (r CheckoutRequest) classifySubscription() (CheckoutIntent, error) {
	details := make(map[string]string)
	if r.PlanID == nil {
		details["planId"] = "required for subscription checkout"
	}
	if strings.TrimSpace(r.UserInfo.Email) == "" {
		details["userInfo.email"] = "required for subscription checkout"
	}
	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	intent := SubscriptionCheckout{
		PlanID:        *r.PlanID,
		Email:         strings.TrimSpace(r.UserInfo.Email),
		Password:      stringValue(r.UserInfo.Password),
		FirstName:     strings.TrimSpace(r.UserInfo.FirstName),
		LastName:      strings.TrimSpace(r.UserInfo.LastName),
		HotelName:     stringValue(r.UserInfo.HotelName),
		Phone:         stringValue(r.UserInfo.Phone),
		Address:       stringValue(r.UserInfo.Address),
		City:          stringValue(r.UserInfo.City),
		Country:       stringValue(r.UserInfo.Country),
		Currency:      stringValue(r.UserInfo.Currency),
		CouponCode:    r.GetCouponCode(),
		PaymentMethod: stringValue(r.PaymentMethod),
	}
	return intent, nil
}

func (r CheckoutRequest) classifyHotelOrder() (CheckoutIntent, error) {
	details := make(map[string]string)
	if r.HotelID == nil {
		details["hotelId"] = "required for hotel_order checkout"
	}
	if len(r.Items) == 0 {
		details["items"] = "at least one item is required"
	}
	if strings.TrimSpace(r.UserInfo.FirstName) == "" {
		details["userInfo.firstName"] = "required for hotel_order checkout"
	}
	if strings.TrimSpace(r.UserInfo.LastName) == "" {
		details["userInfo.lastName"] = "required for hotel_order checkout"
	}
	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	intent := GuestOrderCheckout{
		HotelID:     *r.HotelID,
		FirstName:   strings.TrimSpace(r.UserInfo.FirstName),
		LastName:    strings.TrimSpace(r.UserInfo.LastName),
		RoomNumber:  stringValue(r.UserInfo.RoomNumber),
		PhoneNumber: stringValue(r.UserInfo.PhoneNumber),
		Items:       r.Items,
	}
	return intent, nil
}

func (r CheckoutRequest) GetCouponCode() *string {
	if r.CouponID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
