// Package numx converts free-text form input into optional numbers.
//
// The console collects every numeric field as a plain string; Parse decides
// whether that string carries a usable value. Absence is modeled as a nil
// pointer so payload marshalling can distinguish "not provided" from zero.
package numx

import (
	"math"
	"strconv"
	"strings"
)

// Parse coerces a free-text value into an optional number.
//
// An empty (or whitespace-only) string yields nil. A string that parses to a
// finite float yields a pointer to that value. Anything else, including NaN
// and infinities, yields nil.
func Parse(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
