//go:build unit

package hotel_test

import (
	"strings"
	"testing"
	"time"

	"roomcart/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

	t.Run("strips non-alphanumerics and lowercases", func(t *testing.T) {
		slug := hotel.DeriveSlug("John.Doe+hotels", at)
		assert.True(t, strings.HasPrefix(slug.String(), "johndoehotels-"))
	})

	t.Run("falls back when nothing survives", func(t *testing.T) {
		slug := hotel.DeriveSlug("___", at)
		assert.True(t, strings.HasPrefix(slug.String(), "hotel-"))
	})

	t.Run("caps the base at 24 characters", func(t *testing.T) {
		slug := hotel.DeriveSlug(strings.Repeat("a", 60), at)
		base := strings.SplitN(slug.String(), "-", 2)[0]
		assert.Len(t, base, 24)
	})

	t.Run("same seed at different instants yields different slugs", func(t *testing.T) {
		a := hotel.DeriveSlug("owner", at)
		b := hotel.DeriveSlug("owner", at.Add(time.Nanosecond))
		assert.NotEqual(t, a, b)
	})

	t.Run("derived slugs pass validation", func(t *testing.T) {
		slug := hotel.DeriveSlug("owner@!", at)
		_, err := hotel.NewSlug(slug.String())
		assert.NoError(t, err)
	})
}

func TestNewHotel(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	slug := hotel.DeriveSlug("owner", at)

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := hotel.NewHotel(uuid.New(), "   ", slug, "usd", hotel.Locale{})
		assert.ErrorIs(t, err, hotel.ErrEmptyName)
	})

	t.Run("normalizes currency and defaults theme color", func(t *testing.T) {
		h, err := hotel.NewHotel(uuid.New(), "Seaside Resort", slug, " usd ", hotel.Locale{City: " Lisbon "})
		assert.NoError(t, err)
		assert.Equal(t, "USD", h.Currency())
		assert.Equal(t, hotel.DefaultThemeColor, h.ThemeColor())
		assert.Equal(t, "Lisbon", h.City())
	})
}
