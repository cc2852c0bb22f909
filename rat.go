package jellyschema

import (
	"fmt"
	"math/big"
)

// numberToRat converts a decoded JSON/YAML numeric value (float64, the
// various int/uint widths, or a numeric string) into an exact big.Rat,
// avoiding the precision loss that a float64-ULP comparison would otherwise
// need for `multipleOf`, `min`, and `max`.
func numberToRat(value any) (*big.Rat, bool) {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, false
	}

	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, false
	}
	return r, true
}

// numericRatForValidation converts an instance value to a big.Rat only if
// it is actually of JSON kind "integer" or "number" — unlike numberToRat, it
// refuses to coerce a numeric-looking string, so a `min`/`max`/`multipleOf`
// validator that receives a string value (a `type` mismatch, reported
// separately) silently skips rather than misjudging it as numeric.
func numericRatForValidation(value any) (*big.Rat, bool) {
	kind := getDataType(value)
	if kind != "integer" && kind != "number" {
		return nil, false
	}
	return numberToRat(value)
}

// formatRat renders r without unnecessary trailing zeros, for embedding a
// numeric bound in a validation message.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	for len(dec) > 0 && dec[len(dec)-1] == '0' {
		dec = dec[:len(dec)-1]
	}
	if len(dec) > 0 && dec[len(dec)-1] == '.' {
		dec = dec[:len(dec)-1]
	}
	return dec
}

// isMultipleOf reports whether value is an exact integer multiple of
// divisor, both given as big.Rat, with no floating-point tolerance needed
// since the comparison is done in exact rational arithmetic.
func isMultipleOf(value, divisor *big.Rat) bool {
	if divisor.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(value, divisor)
	return quotient.IsInt()
}
