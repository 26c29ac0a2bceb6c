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

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

const findHotelByIDSQL = `
SELECT id, owner_id, name, slug, currency
FROM hotels
WHERE id = $1`

func (s *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.HotelSnapshot, error) {
	var snap commands.HotelSnapshot
	err := s.db.QueryRow(ctx, findHotelByIDSQL, id).Scan(
		&snap.ID,
		&snap.OwnerID,
		&snap.Name,
		&snap.Slug,
		&snap.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return &snap, nil
}

const findHotelBySlugSQL = `
SELECT id, name, slug, currency, logo_url, theme_color, country, city, address, created_at
FROM hotels
WHERE slug = $1`

const findProductsByHotelSQL = `
SELECT id, name, description, price, in_stock
FROM products
WHERE hotel_id = $1
ORDER BY name ASC`

// FindBySlug assembles the public storefront view: hotel branding plus the
// full catalog in one round trip per table.
func (s *HotelReadStore) FindBySlug(ctx context.Context, slug string) (*queries.StorefrontView, error) {
	var hv queries.HotelView
	err := s.db.QueryRow(ctx, findHotelBySlugSQL, slug).Scan(
		&hv.ID,
		&hv.Name,
		&hv.Slug,
		&hv.Currency,
		&hv.LogoURL,
		&hv.ThemeColor,
		&hv.Country,
		&hv.City,
		&hv.Address,
		&hv.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by slug", err)
	}

	rows, err := s.db.Query(ctx, findProductsByHotelSQL, hv.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel products", err)
	}
	defer rows.Close()

	products := make([]*queries.ProductView, 0)
	for rows.Next() {
		var p queries.ProductView
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InStock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return &queries.StorefrontView{Hotel: hv, Products: products}, nil
}
