package providers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces a raw JSON value to a float64. Nil and missing values
// report !ok, as do non-numeric strings and NaN, so "unavailable" never
// leaks into the canonical model as a number. Never panics.
func ToNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return guardNaN(val)
	case float32:
		return guardNaN(float64(val))
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return guardNaN(parsed)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return guardNaN(parsed)
	}
	return 0, false
}

// ToInt coerces a raw JSON value to an int, truncating fractions.
func ToInt(v any) (int, bool) {
	f, ok := ToNumber(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// ToString renders a raw JSON value as a string. Numbers drop a trailing
// ".0" so numeric ids round-trip cleanly; nil is the empty string.
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	}
	return ""
}

// ToBool coerces loose truthy encodings ("1", "true", 1, true).
func ToBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		trimmed := strings.TrimSpace(val)
		return trimmed == "1" || strings.EqualFold(trimmed, "true")
	case float64:
		return val == 1
	case int:
		return val == 1
	}
	return false
}

func guardNaN(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
