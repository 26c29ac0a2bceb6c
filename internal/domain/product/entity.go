package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

// Product is a catalog item belonging to exactly one hotel.
type Product struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	inStock     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(hotelID uuid.UUID, name, description string, price decimal.Decimal, inStock bool) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          uuid.New(),
		hotelID:     hotelID,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price.Round(2),
		inStock:     inStock,
	}, nil
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) HotelID() uuid.UUID     { return p.hotelID }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) InStock() bool          { return p.inStock }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
