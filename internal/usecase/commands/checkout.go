package commands

import (
	"context"
	"log/slog"
	"time"

	"roomcart/internal/domain/coupon"
	"roomcart/internal/domain/hotel"
	"roomcart/internal/domain/order"
	"roomcart/internal/domain/owner"
	"roomcart/internal/domain/product"
	"roomcart/internal/domain/subscription"
	reqdto "roomcart/internal/handler/dto/request"
	"roomcart/internal/infra"
	"roomcart/internal/pkg/clock"
	"roomcart/internal/pkg/config"
	"roomcart/internal/pkg/errs"
	"roomcart/internal/pkg/password"
	"roomcart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation              = errs.New("validation error")
	ErrPlanNotFound            = errs.New("plan not found")
	ErrHotelNotFound           = errs.New("hotel not found")
	ErrDuplicateAccount        = errs.New("account already exists")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// PricingSummary is the resolved price breakdown echoed back to the client.
type PricingSummary struct {
	BaseAmount    decimal.Decimal
	Discount      decimal.Decimal
	FinalAmount   decimal.Decimal
	AppliedCoupon *string
}

type OwnerSummary struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type HotelSummary struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	Currency string
}

type SubscriptionSummary struct {
	ID       uuid.UUID
	PlanID   uuid.UUID
	PlanName string
	Status   string
	StartsAt time.Time
	EndsAt   time.Time
}

type SubscriptionCheckoutResult struct {
	Owner             OwnerSummary
	Hotel             HotelSummary
	Subscription      SubscriptionSummary
	Pricing           PricingSummary
	RequiresPayment   bool
	GeneratedPassword bool
}

type OrderItemSummary struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type GuestOrderResult struct {
	OrderID uuid.UUID
	Number  string
	HotelID uuid.UUID
	Total   decimal.Decimal
	Status  string
	Items   []OrderItemSummary
}

type CheckoutCommands interface {
	Subscribe(ctx context.Context, intent reqdto.SubscriptionCheckout) (*SubscriptionCheckoutResult, error)
	PlaceOrder(ctx context.Context, intent reqdto.GuestOrderCheckout) (*GuestOrderResult, error)
}

type checkoutUseCaseImpl struct {
	uow         shared.UnitOfWork
	planStore   PlanReadStore
	couponStore CouponReadStore
	hotelStore  HotelReadStore
	clock       clock.Clock
	cfg         config.CheckoutConfig
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	planStore PlanReadStore,
	couponStore CouponReadStore,
	hotelStore HotelReadStore,
	clock clock.Clock,
	cfg config.CheckoutConfig,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:         uow,
		planStore:   planStore,
		couponStore: couponStore,
		hotelStore:  hotelStore,
		clock:       clock,
		cfg:         cfg,
	}
}

func (c *checkoutUseCaseImpl) Subscribe(ctx context.Context, intent reqdto.SubscriptionCheckout) (*SubscriptionCheckoutResult, error) {
	plan, err := c.planStore.FindByID(ctx, intent.PlanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	pricing := c.resolvePricing(ctx, plan.Price, intent.CouponCode)

	email, err := owner.NewEmail(intent.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	plainPassword := intent.Password
	generated := false
	if plainPassword == "" {
		plainPassword, err = password.GenerateRandom()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate password")
		}
		generated = true
	}
	passwordHash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	ownerEntity := owner.NewOwner(email, passwordHash, intent.FirstName, intent.LastName, intent.HotelName)

	now := c.clock.Now()
	slug := hotel.DeriveSlug(email.LocalPart(), now)

	hotelName := intent.HotelName
	if hotelName == "" {
		hotelName = email.LocalPart()
	}
	currency := intent.Currency
	if currency == "" {
		currency = c.cfg.DefaultCurrency
	}

	hotelEntity, err := hotel.NewHotel(ownerEntity.ID(), hotelName, slug, currency, hotel.Locale{
		Country: intent.Country,
		City:    intent.City,
		Address: intent.Address,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	subscriptionEntity := subscription.NewSubscription(
		ownerEntity.ID(),
		hotelEntity.ID(),
		plan.ID,
		pricing.FinalAmount,
		plan.DurationDays,
		intent.PaymentMethod,
		now,
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Owners().Create(ctx, ownerEntity); err != nil {
			return err
		}
		if err := tx.Hotels().Create(ctx, hotelEntity); err != nil {
			return err
		}
		if err := tx.Subscriptions().Create(ctx, subscriptionEntity); err != nil {
			return err
		}
		return tx.Owners().SetCurrentSubscription(ctx, ownerEntity.ID(), subscriptionEntity.ID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateAccount
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.seedCatalog(ctx, hotelEntity.ID())

	return &SubscriptionCheckoutResult{
		Owner: OwnerSummary{
			ID:        ownerEntity.ID(),
			Email:     email.Value(),
			FirstName: ownerEntity.FirstName(),
			LastName:  ownerEntity.LastName(),
		},
		Hotel: HotelSummary{
			ID:       hotelEntity.ID(),
			Name:     hotelEntity.Name(),
			Slug:     hotelEntity.Slug().String(),
			Currency: hotelEntity.Currency(),
		},
		Subscription: SubscriptionSummary{
			ID:       subscriptionEntity.ID(),
			PlanID:   plan.ID,
			PlanName: plan.Name,
			Status:   subscriptionEntity.Status().String(),
			StartsAt: subscriptionEntity.StartsAt(),
			EndsAt:   subscriptionEntity.EndsAt(),
		},
		Pricing:           pricing,
		RequiresPayment:   subscriptionEntity.Status() == subscription.StatusPending,
		GeneratedPassword: generated,
	}, nil
}

// resolvePricing applies an optional coupon best-effort: any resolution
// failure (unknown code, inactive, expired, malformed) is logged and the
// checkout proceeds at full price. Pricing never blocks on the discount
// infrastructure.
func (c *checkoutUseCaseImpl) resolvePricing(ctx context.Context, basePrice decimal.Decimal, couponCode *string) PricingSummary {
	summary := PricingSummary{
		BaseAmount:  basePrice,
		Discount:    decimal.Zero,
		FinalAmount: basePrice,
	}
	if couponCode == nil {
		return summary
	}

	snap, err := c.couponStore.FindByCode(ctx, *couponCode)
	if err != nil {
		slog.Info("coupon resolution failed, charging full price",
			"code", *couponCode, "error", err.Error())
		return summary
	}

	couponEntity, err := coupon.NewCoupon(snap.ID, snap.Code, snap.Kind, snap.Value, snap.IsActive, snap.ExpiresAt)
	if err != nil {
		slog.Warn("stored coupon is malformed, charging full price",
			"code", *couponCode, "error", err.Error())
		return summary
	}

	if err := couponEntity.ValidateRedemption(c.clock.Now()); err != nil {
		slog.Info("coupon not redeemable, charging full price",
			"code", *couponCode, "reason", err.Error())
		return summary
	}

	applied := couponEntity.Code().String()
	summary.Discount = couponEntity.DiscountAmount(basePrice)
	summary.FinalAmount = couponEntity.ApplyDiscount(basePrice)
	summary.AppliedCoupon = &applied
	return summary
}

// seedCatalog runs after the provisioning transaction has committed. A
// seeding failure leaves the tenant with an empty catalog but never fails
// the checkout, so the error is deliberately discarded after logging.
func (c *checkoutUseCaseImpl) seedCatalog(ctx context.Context, hotelID uuid.UUID) {
	if !c.cfg.SeedCatalog {
		return
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().CreateBatch(ctx, product.DefaultCatalog(hotelID))
	})
	if err != nil {
		slog.Error("failed to seed default catalog", "hotel_id", hotelID, "error", err.Error())
	}
}

func (c *checkoutUseCaseImpl) PlaceOrder(ctx context.Context, intent reqdto.GuestOrderCheckout) (*GuestOrderResult, error) {
	hotelSnap, err := c.hotelStore.FindByID(ctx, intent.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	items := make([]order.Item, 0, len(intent.Items))
	for _, raw := range intent.Items {
		item, err := order.NewItem(raw.Name, raw.Price, raw.Quantity)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		items = append(items, item)
	}

	guest := order.Guest{
		FirstName:   intent.FirstName,
		LastName:    intent.LastName,
		RoomNumber:  intent.RoomNumber,
		PhoneNumber: intent.PhoneNumber,
	}

	orderEntity, err := order.NewOrder(hotelSnap.ID, guest, items, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, orderEntity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	itemSummaries := make([]OrderItemSummary, 0, len(orderEntity.Items()))
	for _, item := range orderEntity.Items() {
		itemSummaries = append(itemSummaries, OrderItemSummary{
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	return &GuestOrderResult{
		OrderID: orderEntity.ID(),
		Number:  orderEntity.Number(),
		HotelID: orderEntity.HotelID(),
		Total:   orderEntity.Total(),
		Status:  orderEntity.Status().String(),
		Items:   itemSummaries,
	}, nil
}
