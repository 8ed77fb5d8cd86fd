package helpers

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// PositiveInt coerces form input into a count. Anything that is not a finite
// non-negative number becomes 0; fractions are truncated.
func PositiveInt(v any) int {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// NonNegative clamps f to zero when it is negative or NaN.
func NonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// PositiveFloat is PositiveInt for weights: fractions are kept.
func PositiveFloat(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return NonNegative(f)
}
