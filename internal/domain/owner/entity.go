package owner

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Owner is the administrator account of exactly one hotel tenant.
// Owners are never hard-deleted.
type Owner struct {
	id                    uuid.UUID
	email                 Email
	passwordHash          string
	firstName             string
	lastName              string
	hotelNameHint         string
	currentSubscriptionID *uuid.UUID
	createdAt             time.Time
	updatedAt             time.Time
}

func NewOwner(email Email, passwordHash, firstName, lastName, hotelNameHint string) *Owner {
	return &Owner{
		id:            uuid.New(),
		email:         email,
		passwordHash:  passwordHash,
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		hotelNameHint: strings.TrimSpace(hotelNameHint),
	}
}

func ReconstructOwner(
	id uuid.UUID,
	email Email,
	passwordHash, firstName, lastName, hotelNameHint string,
	currentSubscriptionID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Owner {
	return &Owner{
		id:                    id,
		email:                 email,
		passwordHash:          passwordHash,
		firstName:             firstName,
		lastName:              lastName,
		hotelNameHint:         hotelNameHint,
		currentSubscriptionID: currentSubscriptionID,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (o *Owner) ID() uuid.UUID                      { return o.id }
func (o *Owner) Email() Email                       { return o.email }
func (o *Owner) PasswordHash() string               { return o.passwordHash }
func (o *Owner) FirstName() string                  { return o.firstName }
func (o *Owner) LastName() string                   { return o.lastName }
func (o *Owner) HotelNameHint() string              { return o.hotelNameHint }
func (o *Owner) CurrentSubscriptionID() *uuid.UUID  { return o.currentSubscriptionID }
func (o *Owner) CreatedAt() time.Time               { return o.createdAt }
func (o *Owner) UpdatedAt() time.Time               { return o.updatedAt }
