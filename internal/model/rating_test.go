package model

import (
	"math"
	"testing"
	"unicode/utf8"
)

func TestFilledStars(t *testing.T) {
	tests := []struct {
		rating   float64
		expected int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{2.6, 3},
		{4.99, 5},
		{5, 5},
		{-1, 0},
		{7.2, 5},
	}

	for _, test := range tests {
		result := FilledStars(test.rating)
		if result != test.expected {
			t.Errorf("FilledStars(%v) = %d, expected %d", test.rating, result, test.expected)
		}
	}
}

func TestStarString(t *testing.T) {
	tests := []struct {
		rating   float64
		expected string
	}{
		{0, "☆☆☆☆☆"},
		{0.4, "☆☆☆☆☆"},
		{0.5, "★☆☆☆☆"},
		{2.6, "★★★☆☆"},
		{4.99, "★★★★★"},
		{5, "★★★★★"},
	}

	for _, test := range tests {
		result := StarString(test.rating)
		if result != test.expected {
			t.Errorf("StarString(%v) = %s, expected %s", test.rating, result, test.expected)
		}
		if utf8.RuneCountInString(result) != StarSlots {
			t.Errorf("StarString(%v) has %d slots, expected %d",
				test.rating, utf8.RuneCountInString(result), StarSlots)
		}
	}
}

func TestValidateRating(t *testing.T) {
	rejected := []float64{0, 6, 3.5, -2, math.NaN()}
	for _, v := range rejected {
		if err := ValidateRating(v); err == nil {
			t.Errorf("ValidateRating(%v) = nil, expected error", v)
		}
	}

	for v := 1.0; v <= 5.0; v++ {
		if err := ValidateRating(v); err != nil {
			t.Errorf("ValidateRating(%v) = %v, expected nil", v, err)
		}
	}
}
