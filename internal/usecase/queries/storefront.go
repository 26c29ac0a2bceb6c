package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorefrontView is everything the QR-ordering page needs in one fetch:
// hotel branding plus the purchasable catalog.
type StorefrontView struct {
	Hotel    HotelView      `json:"hotel"`
	Products []*ProductView `json:"products"`
}

type HotelView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Currency   string    `json:"currency"`
	LogoURL    string    `json:"logo_url"`
	ThemeColor string    `json:"theme_color"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

type ProductView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
}

type StorefrontQueries interface {
	GetBySlug(ctx context.Context, slug string) (*StorefrontView, error)
}

type StorefrontReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*StorefrontView, error)
}

type storefrontQueriesImpl struct {
	store StorefrontReadStore
}

func NewStorefrontQueries(store StorefrontReadStore) StorefrontQueries {
	return &storefrontQueriesImpl{store: store}
}

func (q *storefrontQueriesImpl) GetBySlug(ctx context.Context, slug string) (*StorefrontView, error) {
	return q.store.FindBySlug(ctx, slug)
}
