package api

import (
	"errors"
	"net/http"

	reqdto "roomcart/internal/handler/dto/request"
	resdto "roomcart/internal/handler/dto/response"
	"roomcart/internal/handler/middleware"
	"roomcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutUseCase commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase: checkoutUseCase}
}

// @Summary Checkout
// @Description Single checkout endpoint handling both subscription purchases and guest room-service orders
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.SubscriptionCheckoutResponse
// @Failure 400 {object} resdto.CheckoutErrorResponse
// @Failure 404 {object} resdto.CheckoutErrorResponse
// @Failure 409 {object} resdto.CheckoutErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Invalid request format", nil))
		return
	}

	intent, err := req.Classify()
	if err != nil {
		var validationErr *reqdto.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Validation failed", validationErr.Details))
			return
		}
		c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Invalid request format", nil))
		return
	}

	switch typed := intent.(type) {
	case reqdto.SubscriptionCheckout:
		h.handleSubscription(c, typed)
	case reqdto.GuestOrderCheckout:
		h.handleGuestOrder(c, typed)
	default:
		c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Validation failed", nil))
	}
}

func (h *CheckoutHandler) handleSubscription(c *gin.Context, intent reqdto.SubscriptionCheckout) {
	result, err := h.checkoutUseCase.Subscribe(c.Request.Context(), intent)
	if err != nil {
		middleware.RecordCheckout(reqdto.CheckoutTypeSubscription, checkoutOutcome(err))
		switch {
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, resdto.NewCheckoutError("Plan not found", nil))
		case errors.Is(err, commands.ErrDuplicateAccount):
			c.JSON(http.StatusConflict, resdto.NewCheckoutError("An account with this email already exists", nil))
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Validation failed", err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewCheckoutError("Checkout failed", nil))
		}
		return
	}

	middleware.RecordCheckout(reqdto.CheckoutTypeSubscription, "succeeded")
	c.JSON(http.StatusCreated, resdto.FromSubscriptionCheckout(result))
}

func (h *CheckoutHandler) handleGuestOrder(c *gin.Context, intent reqdto.GuestOrderCheckout) {
	result, err := h.checkoutUseCase.PlaceOrder(c.Request.Context(), intent)
	if err != nil {
		middleware.RecordCheckout(reqdto.CheckoutTypeHotelOrder, checkoutOutcome(err))
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, resdto.NewCheckoutError("Hotel not found", nil))
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, resdto.NewCheckoutError("Validation failed", err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewCheckoutError("Checkout failed", nil))
		}
		return
	}

	middleware.RecordCheckout(reqdto.CheckoutTypeHotelOrder, "succeeded")
	c.JSON(http.StatusCreated, resdto.FromGuestOrder(result))
}

func checkoutOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrValidation):
		return "validation_failed"
	case errors.Is(err, commands.ErrPlanNotFound), errors.Is(err, commands.ErrHotelNotFound):
		return "not_found"
	case errors.Is(err, commands.ErrDuplicateAccount):
		return "duplicate_account"
	default:
		return "failed"
	}
}

// MethodNotAllowed is the fixed response for non-POST methods on the
// checkout endpoint.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, resdto.NewCheckoutError("Method not allowed", nil))
}
