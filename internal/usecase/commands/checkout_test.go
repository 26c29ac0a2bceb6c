//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"roomcart/internal/domain/hotel"
	"roomcart/internal/domain/order"
	"roomcart/internal/domain/owner"
	"roomcart/internal/domain/product"
	"roomcart/internal/domain/subscription"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/pkg/clock"
	"roomcart/internal/pkg/config"
	"roomcart/internal/usecase/commands"
	"roomcart/internal/usecase/shared"
	"roomcart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes -----------------------------------------------------------------

type fakeOwnerRepo struct {
	createErr      error
	created        []*owner.Owner
	currentSubSets int
}

func (f *fakeOwnerRepo) Create(_ context.Context, o *owner.Owner) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOwnerRepo) SetCurrentSubscription(_ context.Context, _, _ uuid.UUID) error {
	f.currentSubSets++
	return nil
}

type fakeHotelRepo struct {
	created []*hotel.Hotel
}

func (f *fakeHotelRepo) Create(_ context.Context, h *hotel.Hotel) error {
	f.created = append(f.created, h)
	return nil
}

type fakeSubscriptionRepo struct {
	created []*subscription.Subscription
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, s *subscription.Subscription) error {
	f.created = append(f.created, s)
	return nil
}

type fakeProductRepo struct {
	batchErr error
	created  []*product.Product
}

func (f *fakeProductRepo) CreateBatch(_ context.Context, products []*product.Product) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.created = append(f.created, products...)
	return nil
}

type fakeOrderRepo struct {
	createErr error
	created   []*order.Order
	status    order.Status
	statusErr error
	updated   []order.Status
}

func (f *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) FindStatusForUpdate(_ context.Context, _ uuid.UUID) (order.Status, error) {
	if f.statusErr != nil {
		return order.Status(""), f.statusErr
	}
	return f.status, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status order.Status) error {
	f.updated = append(f.updated, status)
	return nil
}

type fakeTx struct {
	owners   *fakeOwnerRepo
	hotels   *fakeHotelRepo
	subs     *fakeSubscriptionRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func (t *fakeTx) DB() db.DBTX                                { return nil }
func (t *fakeTx) Owners() shared.OwnerRepository             { return t.owners }
func (t *fakeTx) Hotels() shared.HotelRepository             { return t.hotels }
func (t *fakeTx) Subscriptions() shared.SubscriptionRepository { return t.subs }
func (t *fakeTx) Products() shared.ProductRepository         { return t.products }
func (t *fakeTx) Orders() shared.OrderRepository             { return t.orders }

type fakeUoW struct {
	tx      *fakeTx
	withins int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withins++
	return fn(ctx, u.tx)
}

type fakePlanStore struct {
	snap *commands.PlanSnapshot
	err  error
}

func (f *fakePlanStore) FindByID(_ context.Context, _ uuid.UUID) (*commands.PlanSnapshot, error) {
	return f.snap, f.err
}

type fakeCouponStore struct {
	snap *commands.CouponSnapshot
	err  error
}

func (f *fakeCouponStore) FindByCode(_ context.Context, _ string) (*commands.CouponSnapshot, error) {
	return f.snap, f.err
}

type fakeHotelStore struct {
	snap *commands.HotelSnapshot
	err  error
}

func (f *fakeHotelStore) FindByID(_ context.Context, _ uuid.UUID) (*commands.HotelSnapshot, error) {
	return f.snap, f.err
}

// ---- fixture ---------------------------------------------------------------

type checkoutFixture struct {
	uow         *fakeUoW
	planStore   *fakePlanStore
	couponStore *fakeCouponStore
	hotelStore  *fakeHotelStore
	clock       *clock.MockClock
	usecase     commands.CheckoutCommands
}

func newCheckoutFixture() *checkoutFixture {
	tx := &fakeTx{
		owners:   &fakeOwnerRepo{},
		hotels:   &fakeHotelRepo{},
		subs:     &fakeSubscriptionRepo{},
		products: &fakeProductRepo{},
		orders:   &fakeOrderRepo{},
	}
	f := &checkoutFixture{
		uow: &fakeUoW{tx: tx},
		planStore: &fakePlanStore{snap: &commands.PlanSnapshot{
			ID:           uuid.New(),
			Name:         "Growth",
			Price:        decimal.NewFromInt(100),
			DurationDays: 30,
			ProductLimit: 50,
			IsActive:     true,
		}},
		couponStore: &fakeCouponStore{err: infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)},
		hotelStore: &fakeHotelStore{snap: &commands.HotelSnapshot{
			ID:       uuid.New(),
			OwnerID:  uuid.New(),
			Name:     "Seaside Resort",
			Slug:     "seaside-abc",
			Currency: "USD",
		}},
		clock: clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.usecase = commands.NewCheckoutUseCase(
		f.uow, f.planStore, f.couponStore, f.hotelStore, f.clock,
		config.CheckoutConfig{DefaultCurrency: "USD", SeedCatalog: true},
	)
	return f
}

// ---- subscription path -----------------------------------------------------

func TestSubscribe(t *testing.T) {
	t.Run("provisions owner, hotel and subscription", func(t *testing.T) {
		f := newCheckoutFixture()
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()

		result, err := f.usecase.Subscribe(context.Background(), intent)
		require.NoError(t, err)

		require.Len(t, f.uow.tx.owners.created, 1)
		require.Len(t, f.uow.tx.hotels.created, 1)
		require.Len(t, f.uow.tx.subs.created, 1)
		assert.Equal(t, 1, f.uow.tx.owners.currentSubSets)

		assert.Equal(t, "owner@example.com", result.Owner.Email)
		assert.Equal(t, "Seaside Resort", result.Hotel.Name)
		assert.Equal(t, "Growth", result.Subscription.PlanName)
		assert.True(t, result.Pricing.FinalAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "pending", result.Subscription.Status)
		assert.True(t, result.RequiresPayment)
		assert.False(t, result.GeneratedPassword)
	})

	t.Run("percentage coupon reduces the final amount", func(t *testing.T) {
		f := newCheckoutFixture()
		f.couponStore.err = nil
		f.couponStore.snap = builder.NewCouponBuilder().BuildSnapshot()

		code := "SAVE20"
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()
		intent.CouponCode = &code

		result, err := f.usecase.Subscribe(context.Background(), intent)
		require.NoError(t, err)

		assert.True(t, result.Pricing.BaseAmount.Equal(decimal.NewFromInt(100)))
		assert.True(t, result.Pricing.Discount.Equal(decimal.NewFromInt(20)))
		assert.True(t, result.Pricing.FinalAmount.Equal(decimal.NewFromInt(80)))
		require.NotNil(t, result.Pricing.AppliedCoupon)
		assert.Equal(t, "SAVE20", *result.Pricing.AppliedCoupon)
	})

	t.Run("unresolvable coupon degrades to full price", func(t *testing.T) {
		f := newCheckoutFixture() // coupon store returns NOT_FOUND by default

		code := "GHOST"
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()
		intent.CouponCode = &code

		result, err := f.usecase.Subscribe(context.Background(), intent)
		require.NoError(t, err)

		assert.True(t, result.Pricing.FinalAmount.Equal(decimal.NewFromInt(100)))
		assert.Nil(t, result.Pricing.AppliedCoupon)
	})

	t.Run("expired coupon degrades to full price", func(t *testing.T) {
		f := newCheckoutFixture()
		expired := f.clock.Now().Add(-time.Hour)
		f.couponStore.err = nil
		f.couponStore.snap = builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.ExpiresAt = &expired }).
			BuildSnapshot()

		code := "SAVE20"
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()
		intent.CouponCode = &code

		result, err := f.usecase.Subscribe(context.Background(), intent)
		require.NoError(t, err)
		assert.True(t, result.Pricing.FinalAmount.Equal(decimal.NewFromInt(100)))
		assert.Nil(t, result.Pricing.AppliedCoupon)
	})

	t.Run("unknown plan fails with ErrPlanNotFound", func(t *testing.T) {
		f := newCheckoutFixture()
		f.planStore.snap = nil
		f.planStore.err = infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)

		_, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		assert.ErrorIs(t, err, commands.ErrPlanNotFound)
		assert.Zero(t, f.uow.withins, "no writes on plan lookup failure")
	})

	t.Run("inactive plan fails with ErrPlanNotFound", func(t *testing.T) {
		f := newCheckoutFixture()
		f.planStore.snap.IsActive = false

		_, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		assert.ErrorIs(t, err, commands.ErrPlanNotFound)
	})

	t.Run("duplicate email maps to ErrDuplicateAccount", func(t *testing.T) {
		f := newCheckoutFixture()
		f.uow.tx.owners.createErr = infra.WrapRepoErr("failed to create owner", nil, infra.KindDuplicateKey)

		_, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		assert.ErrorIs(t, err, commands.ErrDuplicateAccount)
	})

	t.Run("invalid email fails validation before any write", func(t *testing.T) {
		f := newCheckoutFixture()
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()
		intent.Email = "not-an-email"

		_, err := f.usecase.Subscribe(context.Background(), intent)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Zero(t, f.uow.withins)
	})

	t.Run("omitted password is generated and flagged", func(t *testing.T) {
		f := newCheckoutFixture()
		intent := builder.NewCheckoutBuilder().BuildSubscriptionIntent()
		intent.Password = ""

		result, err := f.usecase.Subscribe(context.Background(), intent)
		require.NoError(t, err)
		assert.True(t, result.GeneratedPassword)
		require.Len(t, f.uow.tx.owners.created, 1)
		assert.NotEmpty(t, f.uow.tx.owners.created[0].PasswordHash())
	})

	t.Run("zero-price plan activates immediately", func(t *testing.T) {
		f := newCheckoutFixture()
		f.planStore.snap.Price = decimal.Zero

		result, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		require.NoError(t, err)
		assert.Equal(t, "active", result.Subscription.Status)
		assert.False(t, result.RequiresPayment)
	})

	t.Run("seeds the default catalog after provisioning", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		require.NoError(t, err)
		assert.NotEmpty(t, f.uow.tx.products.created)
	})

	t.Run("seeding failure never fails the checkout", func(t *testing.T) {
		f := newCheckoutFixture()
		f.uow.tx.products.batchErr = infra.WrapRepoErr("failed to create product", nil, infra.KindDBFailure)

		result, err := f.usecase.Subscribe(context.Background(), builder.NewCheckoutBuilder().BuildSubscriptionIntent())
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

// ---- guest order path ------------------------------------------------------

func TestPlaceOrder(t *testing.T) {
	t.Run("creates the order with the summed total", func(t *testing.T) {
		f := newCheckoutFixture()
		intent := builder.NewCheckoutBuilder().BuildGuestOrderIntent()

		result, err := f.usecase.PlaceOrder(context.Background(), intent)
		require.NoError(t, err)

		require.Len(t, f.uow.tx.orders.created, 1)
		// 9.90*1 + 2.50*2
		assert.True(t, result.Total.Equal(decimal.NewFromFloat(14.90)),
			"expected 14.90, got %s", result.Total.String())
		assert.Len(t, result.Items, 2)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("unknown hotel fails with ErrHotelNotFound", func(t *testing.T) {
		f := newCheckoutFixture()
		f.hotelStore.snap = nil
		f.hotelStore.err = infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)

		_, err := f.usecase.PlaceOrder(context.Background(), builder.NewCheckoutBuilder().BuildGuestOrderIntent())
		assert.ErrorIs(t, err, commands.ErrHotelNotFound)
		assert.Zero(t, f.uow.withins)
	})

	t.Run("invalid item fails validation", func(t *testing.T) {
		f := newCheckoutFixture()
		intent := builder.NewCheckoutBuilder().BuildGuestOrderIntent()
		intent.Items[0].Quantity = 0

		_, err := f.usecase.PlaceOrder(context.Background(), intent)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

// ---- order lifecycle -------------------------------------------------------

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("applies a valid transition", func(t *testing.T) {
		f := newCheckoutFixture()
		f.uow.tx.orders.status = order.StatusPending
		uc := commands.NewOrderUseCase(f.uow)

		err := uc.UpdateStatus(context.Background(), uuid.New(), "preparing")
		require.NoError(t, err)
		require.Len(t, f.uow.tx.orders.updated, 1)
		assert.Equal(t, order.StatusPreparing, f.uow.tx.orders.updated[0])
	})

	t.Run("rejects an invalid transition", func(t *testing.T) {
		f := newCheckoutFixture()
		f.uow.tx.orders.status = order.StatusDelivered
		uc := commands.NewOrderUseCase(f.uow)

		err := uc.UpdateStatus(context.Background(), uuid.New(), "cancelled")
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Empty(t, f.uow.tx.orders.updated)
	})

	t.Run("unknown order maps to ErrOrderNotFound", func(t *testing.T) {
		f := newCheckoutFixture()
		f.uow.tx.orders.statusErr = infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
		uc := commands.NewOrderUseCase(f.uow)

		err := uc.UpdateStatus(context.Background(), uuid.New(), "preparing")
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		f := newCheckoutFixture()
		uc := commands.NewOrderUseCase(f.uow)

		err := uc.UpdateStatus(context.Background(), uuid.New(), "teleported")
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}
