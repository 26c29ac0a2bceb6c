package repository

import (
	"context"

	"roomcart/internal/domain/product"
	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/usecase/shared"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) shared.ProductRepository {
	return &ProductRepository{db: dbtx}
}

const insertProductSQL = `
INSERT INTO products (id, hotel_id, name, description, price, in_stock)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ProductRepository) CreateBatch(ctx context.Context, products []*product.Product) error {
	for _, p := range products {
		_, err := r.db.Exec(ctx, insertProductSQL,
			p.ID(),
			p.HotelID(),
			p.Name(),
			p.Description(),
			p.Price(),
			p.InStock(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create product", err, infra.KindFromPgError(err))
		}
	}
	return nil
}
