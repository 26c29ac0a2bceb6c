package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("hotel name cannot be empty")

const DefaultThemeColor = "#1f2937"

// Hotel is a single tenant storefront, owned 1:1 by an owner account.
type Hotel struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	slug       Slug
	currency   string
	logoURL    string
	themeColor string
	country    string
	city       string
	address    string
	createdAt  time.Time
	updatedAt  time.Time
}

type Locale struct {
	Country string
	City    string
	Address string
}

func NewHotel(ownerID uuid.UUID, name string, slug Slug, currency string, locale Locale) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Hotel{
		id:         uuid.New(),
		ownerID:    ownerID,
		name:       name,
		slug:       slug,
		currency:   strings.ToUpper(strings.TrimSpace(currency)),
		themeColor: DefaultThemeColor,
		country:    strings.TrimSpace(locale.Country),
		city:       strings.TrimSpace(locale.City),
		address:    strings.TrimSpace(locale.Address),
	}, nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) OwnerID() uuid.UUID   { return h.ownerID }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Slug() Slug           { return h.slug }
func (h *Hotel) Currency() string     { return h.currency }
func (h *Hotel) LogoURL() string      { return h.logoURL }
func (h *Hotel) ThemeColor() string   { return h.themeColor }
func (h *Hotel) Country() string      { return h.country }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Address() string      { return h.address }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
