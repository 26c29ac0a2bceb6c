package readstore

import (
	"context"

	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/pkg/pgconv"
	"roomcart/internal/usecase/commands"
	"roomcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlanReadStore struct {
	db db.DBTX
}

func NewPlanReadStore(dbtx db.DBTX) *PlanReadStore {
	return &PlanReadStore{db: dbtx}
}

const findPlanByIDSQL = `
SELECT id, name, price, duration_days, product_limit, is_active
FROM plans
WHERE id = $1`

func (s *PlanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.PlanSnapshot, error) {
	var snap commands.PlanSnapshot
	err := s.db.QueryRow(ctx, findPlanByIDSQL, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Price,
		&snap.DurationDays,
		&snap.ProductLimit,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan by ID", err)
	}
	return &snap, nil
}

const findActivePlansSQL = `
SELECT id, name, description, price, duration_days, product_limit, features, created_at, updated_at
FROM plans
WHERE is_active = TRUE
ORDER BY price ASC`

func (s *PlanReadStore) FindActive(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := s.db.Query(ctx, findActivePlansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active plans", err)
	}
	defer rows.Close()

	views := make([]*queries.PlanView, 0)
	for rows.Next() {
		var v queries.PlanView
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Description,
			&v.Price,
			&v.DurationDays,
			&v.ProductLimit,
			&v.Features,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate plan rows", err)
	}
	return views, nil
}
