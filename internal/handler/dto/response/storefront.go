package response

import (
	"roomcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StorefrontResponse struct {
	Hotel    StorefrontHotel     `json:"hotel"`
	Products []StorefrontProduct `json:"products"`
}

type StorefrontHotel struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Currency   string    `json:"currency"`
	LogoURL    string    `json:"logoUrl"`
	ThemeColor string    `json:"themeColor"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
}

type StorefrontProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"inStock"`
}

func FromStorefrontView(view *queries.StorefrontView) StorefrontResponse {
	products := make([]StorefrontProduct, 0, len(view.Products))
	for _, p := range view.Products {
		products = append(products, StorefrontProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			InStock:     p.InStock,
		})
	}
	return StorefrontResponse{
		Hotel: StorefrontHotel{
			ID:         view.Hotel.ID,
			Name:       view.Hotel.Name,
			Slug:       view.Hotel.Slug,
			Currency:   view.Hotel.Currency,
			LogoURL:    view.Hotel.LogoURL,
			ThemeColor: view.Hotel.ThemeColor,
			Country:    view.Hotel.Country,
			City:       view.Hotel.City,
			Address:    view.Hotel.Address,
		},
		Products: products,
	}
}
