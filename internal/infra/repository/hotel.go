package repository

import (
	"context"

	"roomcart/internal/domain/hotel"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/usecase/shared"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) shared.HotelRepository {
	return &HotelRepository{db: dbtx}
}

const insertHotelSQL = `
INSERT INTO hotels (id, owner_id, name, slug, currency, logo_url, theme_color, country, city, address)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	_, err := r.db.Exec(ctx, insertHotelSQL,
		h.ID(),
		h.OwnerID(),
		h.Name(),
		h.Slug().String(),
		h.Currency(),
		h.LogoURL(),
		h.ThemeColor(),
		h.Country(),
		h.City(),
		h.Address(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err, infra.KindFromPgError(err))
	}
	return nil
}
