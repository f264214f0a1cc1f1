// Package numeric parses user-entered numbers into explicit results.
//
// Form fields in the wizard accept free text; a malformed price or count is
// a distinguishable outcome here, and any fallback to zero (or to a default
// person count) is an explicit decision at the call site rather than a
// silent coercion inside the parser.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Amount is the result of parsing a decimal field (price, tax, tip percent).
type Amount struct {
	Value float64
	OK    bool
}

// Count is the result of parsing an integer field (quantity, people count).
type Count struct {
	Value int
	OK    bool
}

// ParseAmount parses s as a decimal amount. Empty input, non-numeric input,
// NaN and infinities all yield an invalid Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{Value: v, OK: true}
}

// ParseCount parses s as an integer count. Empty or non-integer input
// yields an invalid Count.
func ParseCount(s string) Count {
	s = strings.TrimSpace(s)
	if s == "" {
		return Count{}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Count{}
	}
	return Count{Value: v, OK: true}
}

// Or returns the parsed value, or fallback when parsing failed.
func (a Amount) Or(fallback float64) float64 {
	if !a.OK {
		return fallback
	}
	return a.Value
}

// Or returns the parsed value, or fallback when parsing failed.
func (c Count) Or(fallback int) int {
	if !c.OK {
		return fallback
	}
	return c.Value
}
