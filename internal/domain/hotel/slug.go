package hotel

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSlug = errors.New("invalid hotel slug")

var (
	slugRegex        = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]{1,62}[a-z0-9]$`)
	nonAlphanumRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slug is the URL-safe, platform-wide unique identifier of a hotel
// storefront.
type Slug string

func NewSlug(value string) (Slug, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !slugRegex.MatchString(value) {
		return Slug(""), ErrInvalidSlug
	}
	return Slug(value), nil
}

// DeriveSlug builds a slug from the local part of the owner's email plus a
// base-36 nanosecond timestamp. The timestamp disambiguator makes collisions
// practically impossible without a pre-check query; the slugs_key unique
// constraint remains the backstop.
func DeriveSlug(emailLocalPart string, at time.Time) Slug {
	base := nonAlphanumRegex.ReplaceAllString(strings.ToLower(emailLocalPart), "")
	if base == "" {
		base = "hotel"
	}
	if len(base) > 24 {
		base = base[:24]
	}
	return Slug(base + "-" + strconv.FormatInt(at.UnixNano(), 36))
}

func (s Slug) String() string {
	return string(s)
}
