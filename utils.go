package jellyschema

import (
	"math/big"
	"reflect"
)

// getDataType classifies a decoded YAML/JSON value the way the `type`
// keyword and the serializer need: the six JSON primitive names, plus
// "unknown" for anything else. Integers decoded from YAML/JSON as floats
// with no fractional part are reported as "integer", matching how
// JellySchema's DSL treats `type: integer` against e.g. `5.0`.
func getDataType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		bigFloat := new(big.Float).SetFloat64(reflect.ValueOf(v).Float())
		if _, acc := bigFloat.Int(nil); acc == big.Exact {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// isInteger reports whether value should be treated as a JSON "integer",
// not merely a "number".
func isInteger(value any) bool {
	return getDataType(value) == "integer"
}

// codePointLength counts Unicode code points, not bytes, matching
// `maxLength`/`minLength`'s contract.
func codePointLength(s string) int {
	return len([]rune(s))
}

// nonNegativeInt converts a decoded numeric schema value into a
// non-negative int, rejecting negative numbers and non-integers.
func nonNegativeInt(value any) (int, bool) {
	r, ok := numberToRat(value)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return 0, false
	}
	return int(r.Num().Int64()), true
}
