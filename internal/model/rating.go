package model

import (
	"errors"
	"math"
	"strings"
)

// Star glyphs used when rendering an aggregate rating.
const (
	StarFilled = "★"
	StarEmpty  = "☆"

	// StarSlots is the number of star positions in a rating indicator.
	StarSlots = 5
)

// ErrInvalidRating rejects a rating that is not a whole number in [1,5].
// The guard runs client-side before any network call.
var ErrInvalidRating = errors.New("rating must be a whole number between 1 and 5")

// ValidateRating reports whether v is acceptable as a user rating.
func ValidateRating(v float64) error {
	if math.IsNaN(v) || v != math.Trunc(v) || v < 1 || v > StarSlots {
		return ErrInvalidRating
	}
	return nil
}

// FilledStars converts an aggregate rating into the number of filled star
// slots: round to nearest, clamped to [0,5].
func FilledStars(rating float64) int {
	filled := int(math.Round(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > StarSlots {
		filled = StarSlots
	}
	return filled
}

// StarString renders an aggregate rating as a fixed five-slot indicator,
// e.g. "★★★☆☆".
func StarString(rating float64) string {
	filled := FilledStars(rating)
	return strings.Repeat(StarFilled, filled) + strings.Repeat(StarEmpty, StarSlots-filled)
}
