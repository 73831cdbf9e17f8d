package billing

import (
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a currency value to two decimal places, half up.
// All derived amounts in this package go through it so that creation
// and display always agree.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseAmount parses a free-text money input into a value rounded to two
// decimals. Quantities and prices arrive from form fields as raw strings;
// parsing and validation happen here in a single step, never by silently
// coercing bad input to zero. Negative values are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Accept a decimal comma from regional keyboards
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}
	return Round2(v), nil
}

// ParsePercent parses a discount/tax percentage string such as "10" or "10%".
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, ErrInvalidDiscount
	}
	return v, nil
}
