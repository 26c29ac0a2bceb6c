//go:build e2e

package checkout_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	reqdto "roomcart/internal/handler/dto/request"
	resdto "roomcart/internal/handler/dto/response"
	"roomcart/tests/common/builder"
	"roomcart/tests/common/dbtest"
	"roomcart/tests/common/httptest"
	"roomcart/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL   = "/api/checkout"
	plansURL      = "/api/plans"
	storefrontURL = "/api/storefront/"
	ordersURL     = "/api/orders/"
)

// decimals compare by value, not representation ("49" vs "49.00")
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

// subscribes with the given builder and requires a 201
func (s *CheckoutSuite) subscribe(b *builder.CheckoutBuilder) resdto.SubscriptionCheckoutResponse {
	req := b.BuildSubscriptionRequest()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, req)

	var response resdto.SubscriptionCheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
	return response
}

// =============================================================================
// Subscription checkout
// =============================================================================

func (s *CheckoutSuite) TestSubscriptionCheckout() {
	s.Run("Normal case: provisions owner, hotel and subscription in one call", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		require.True(t, response.Success)
		require.Equal(t, "owner@example.com", response.User.Email)
		require.Equal(t, "Seaside Resort", response.Hotel.Name)
		require.NotEmpty(t, response.Hotel.Slug)
		require.Equal(t, "Growth", response.Subscription.PlanName)
		require.Equal(t, "pending", response.Subscription.Status)
		require.True(t, response.RequiresPayment)
		require.False(t, response.GeneratedPassword)

		if diff := cmp.Diff(decimal.NewFromInt(49), response.Checkout.FinalAmount, decimalComparer); diff != "" {
			t.Errorf("final amount mismatch (-want +got):\n%s", diff)
		}

		// provisioning is visible in the database
		var ownerCount, productCount int
		ctx := context.Background()
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT count(*) FROM owners WHERE email = 'owner@example.com'").Scan(&ownerCount))
		require.Equal(t, 1, ownerCount)
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT count(*) FROM products WHERE hotel_id = $1", response.Hotel.ID).Scan(&productCount))
		require.Greater(t, productCount, 0, "default catalog should be seeded")

		var currentSubID uuid.UUID
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT current_subscription_id FROM owners WHERE id = $1", response.User.ID).Scan(&currentSubID))
		require.Equal(t, response.Subscription.ID, currentSubID)
	})

	s.Run("Normal case: coupon reduces the charged amount", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) {
				b.PlanID = planID
				b.CouponCode = "SAVE20"
			}))

		want := resdto.CheckoutSummary{
			BaseAmount:  decimal.NewFromInt(49),
			Discount:    decimal.NewFromFloat(9.80),
			FinalAmount: decimal.NewFromFloat(39.20),
		}
		if diff := cmp.Diff(want.BaseAmount, response.Checkout.BaseAmount, decimalComparer); diff != "" {
			t.Errorf("base amount mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want.Discount, response.Checkout.Discount, decimalComparer); diff != "" {
			t.Errorf("discount mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want.FinalAmount, response.Checkout.FinalAmount, decimalComparer); diff != "" {
			t.Errorf("final amount mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, response.Checkout.AppliedCoupon)
		require.Equal(t, "SAVE20", *response.Checkout.AppliedCoupon)
	})

	s.Run("Normal case: expired coupon degrades to full price", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")
		expired := time.Now().Add(-24 * time.Hour)
		dbtest.CreateTestCoupon(t, s.DB, "EXPIRED10", "fixed_amount", decimal.NewFromInt(10), true, &expired)

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) {
				b.PlanID = planID
				b.CouponCode = "EXPIRED10"
			}))

		if diff := cmp.Diff(decimal.NewFromInt(49), response.Checkout.FinalAmount, decimalComparer); diff != "" {
			t.Errorf("final amount mismatch (-want +got):\n%s", diff)
		}
		require.Nil(t, response.Checkout.AppliedCoupon)
	})

	s.Run("Normal case: unknown coupon degrades to full price", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) {
				b.PlanID = planID
				b.CouponCode = "NOSUCHCODE"
			}))

		if diff := cmp.Diff(decimal.NewFromInt(49), response.Checkout.FinalAmount, decimalComparer); diff != "" {
			t.Errorf("final amount mismatch (-want +got):\n%s", diff)
		}
		require.Nil(t, response.Checkout.AppliedCoupon)
	})

	s.Run("Normal case: free plan activates without payment", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Starter")

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		require.Equal(t, "active", response.Subscription.Status)
		require.False(t, response.RequiresPayment)
	})

	s.Run("Normal case: omitted password is generated server-side", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Starter")

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) {
				b.PlanID = planID
				b.Password = ""
			}))

		require.True(t, response.GeneratedPassword)
	})

	s.Run("Error case: duplicate email is rejected with 409", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		req := builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }).
			BuildSubscriptionRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, req)

		httptest.AssertCheckoutError(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: unknown plan is rejected with 404", func() {
		t := s.T()

		req := builder.NewCheckoutBuilder().BuildSubscriptionRequest() // random plan id
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, req)

		httptest.AssertCheckoutError(t, w, http.StatusNotFound, "Plan not found")
	})

	s.Run("Error case: missing planId is rejected with 400", func() {
		t := s.T()

		req := builder.NewCheckoutBuilder().BuildSubscriptionRequest()
		req.PlanID = nil
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, req)

		httptest.AssertCheckoutError(t, w, http.StatusBadRequest, "Validation failed")
	})

	s.Run("Error case: GET on the checkout endpoint returns 405", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkoutURL, nil)

		httptest.AssertCheckoutError(t, w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// =============================================================================
// Storefront and plans
// =============================================================================

func (s *CheckoutSuite) TestStorefront() {
	s.Run("Normal case: provisioned hotel serves its storefront by slug", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		provisioned := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, storefrontURL+provisioned.Hotel.Slug, nil)
		require.Equal(t, http.StatusOK, w.Code, "response: %s", w.Body.String())

		var response resdto.StorefrontResponse
		httptest.DecodeResponseBody(t, w.Body, &response)
		require.Equal(t, provisioned.Hotel.ID, response.Hotel.ID)
		require.Equal(t, "Seaside Resort", response.Hotel.Name)
		require.NotEmpty(t, response.Products, "seeded catalog should be served")
	})

	s.Run("Error case: unknown slug returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, storefrontURL+"no-such-hotel", nil)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Hotel not found")
	})
}

func (s *CheckoutSuite) TestListPlans() {
	s.Run("Normal case: active tiers are listed cheapest first", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, plansURL, nil)

		var response []resdto.PlanResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Len(t, response, 3)
		require.Equal(t, "Starter", response[0].Name)
		require.Equal(t, "Growth", response[1].Name)
		require.Equal(t, "Scale", response[2].Name)
	})

	s.Run("Normal case: newly added plan is purchasable right away", func() {
		t := s.T()
		planID := dbtest.CreateTestPlan(t, s.DB, "Enterprise", decimal.NewFromInt(199), 30)

		response := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		require.Equal(t, "Enterprise", response.Subscription.PlanName)
		if diff := cmp.Diff(decimal.NewFromInt(199), response.Checkout.FinalAmount, decimalComparer); diff != "" {
			t.Errorf("final amount mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// Guest order lifecycle
// =============================================================================

func (s *CheckoutSuite) TestGuestOrderLifecycle() {
	s.Run("Normal case: guest orders, kitchen prepares, order is delivered", func() {
		t := s.T()
		planID := dbtest.GetPlanID(t, s.DB, "Growth")

		provisioned := s.subscribe(builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.PlanID = planID }))

		orderReq := builder.NewCheckoutBuilder().
			With(func(b *builder.CheckoutBuilder) { b.HotelID = provisioned.Hotel.ID }).
			BuildHotelOrderRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, orderReq)

		var created resdto.GuestOrderCheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.True(t, created.Success)
		require.Equal(t, "pending", created.Order.Status)

		// 9.90*1 + 2.50*2
		if diff := cmp.Diff(decimal.NewFromFloat(14.90), created.Order.Total, decimalComparer); diff != "" {
			t.Errorf("order total mismatch (-want +got):\n%s", diff)
		}

		wantItems := []resdto.OrderItemResponse{
			{Name: "Club Sandwich", UnitPrice: decimal.NewFromFloat(9.90), Quantity: 1},
			{Name: "Bottled Water", UnitPrice: decimal.NewFromFloat(2.50), Quantity: 2},
		}
		if diff := cmp.Diff(wantItems, created.Order.Items, decimalComparer); diff != "" {
			t.Errorf("order items mismatch (-want +got):\n%s", diff)
		}

		orderID := created.Order.ID.String()

		// confirmation view
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+orderID, nil)
		var view resdto.OrderViewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "Ada Lovelace", view.GuestName)
		require.Equal(t, "204", view.RoomNumber)

		// pending -> preparing -> delivered
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+orderID+"/status",
			reqdto.UpdateOrderStatusRequest{Status: "preparing"})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "preparing", view.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+orderID+"/status",
			reqdto.UpdateOrderStatusRequest{Status: "delivered"})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "delivered", view.Status)

		// delivered is terminal
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+orderID+"/status",
			reqdto.UpdateOrderStatusRequest{Status: "cancelled"})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("Error case: order against an unknown hotel returns 404", func() {
		t := s.T()

		req := builder.NewCheckoutBuilder().BuildHotelOrderRequest() // random hotel id
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, req)

		httptest.AssertCheckoutError(t, w, http.StatusNotFound, "Hotel not found")
	})

	s.Run("Error case: unknown order id returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+uuid.New().String(), nil)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}
