package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedItem struct {
	name        string
	description string
	price       decimal.Decimal
}

// Starter catalog shown on a storefront before the owner adds their own
// items. Prices are in the hotel's currency.
var defaultCatalog = []seedItem{
	{name: "Bottled Water", description: "Still mineral water, 500ml", price: decimal.NewFromFloat(2.50)},
	{name: "Club Sandwich", description: "Chicken, bacon, lettuce and tomato", price: decimal.NewFromFloat(9.90)},
	{name: "Fresh Orange Juice", description: "Squeezed to order, 300ml", price: decimal.NewFromFloat(4.50)},
	{name: "Espresso", description: "Double shot", price: decimal.NewFromFloat(3.00)},
	{name: "Towel Set", description: "Extra bath and hand towels", price: decimal.NewFromFloat(0)},
}

// DefaultCatalog builds the seed products for a freshly provisioned hotel.
func DefaultCatalog(hotelID uuid.UUID) []*Product {
	products := make([]*Product, 0, len(defaultCatalog))
	for _, item := range defaultCatalog {
		p, err := NewProduct(hotelID, item.name, item.description, item.price, true)
		if err != nil {
			// Seed definitions are static and validated by tests.
			continue
		}
		products = append(products, p)
	}
	return products
}
