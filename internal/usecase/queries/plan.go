package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type PlanView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int32           `json:"duration_days"`
	ProductLimit int32           `json:"product_limit"`
	Features     []string        `json:"features"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PlanQueries interface {
	ListActive(ctx context.Context) ([]*PlanView, error)
}

type PlanViewStore interface {
	FindActive(ctx context.Context) ([]*PlanView, error)
}

type planQueriesImpl struct {
	store PlanViewStore
}

func NewPlanQueries(store PlanViewStore) PlanQueries {
	return &planQueriesImpl{store: store}
}

func (q *planQueriesImpl) ListActive(ctx context.Context) ([]*PlanView, error) {
	return q.store.FindActive(ctx)
}
