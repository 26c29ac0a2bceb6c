package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type PlanSnapshot struct {
	ID           uuid.UUID
	Name         string
	Price        decimal.Decimal
	DurationDays int32
	ProductLimit int32
	IsActive     bool
}

type CouponSnapshot struct {
	ID        uuid.UUID
	Code      string
	Kind      string
	Value     decimal.Decimal
	IsActive  bool
	ExpiresAt *time.Time
}

type HotelSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Slug     string
	Currency string
}

type PlanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlanSnapshot, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
}
