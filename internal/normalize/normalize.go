// Package normalize converts the heterogeneous numeric and timestamp
// representations that arrive at component boundaries (Decimal128 from the
// store, decimal objects and numeric strings from collaborators, native
// numbers from JSON) into single canonical forms. Conversion happens here and
// nowhere else; consumers never re-check representation types.
package normalize

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToNumber converts v to a native float. Absent or unparseable input yields 0,
// which is the correct default for price-like fields. Idempotent: feeding the
// result back in returns the same value.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case decimal.Decimal:
		return n.InexactFloat64()
	case *decimal.Decimal:
		if n == nil {
			return 0
		}
		return n.InexactFloat64()
	case primitive.Decimal128:
		return decimal128ToFloat(n)
	case *primitive.Decimal128:
		if n == nil {
			return 0
		}
		return decimal128ToFloat(*n)
	default:
		return 0
	}
}

// ToNumberOrNil is ToNumber for optional fields: absent or unparseable input
// yields nil instead of 0, so "no compare price" and "compare price of 0"
// stay distinguishable.
func ToNumberOrNil(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case *float64:
		return n
	case string:
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return nil
		}
	case *decimal.Decimal:
		if n == nil {
			return nil
		}
	case *primitive.Decimal128:
		if n == nil {
			return nil
		}
	}
	f := ToNumber(v)
	return &f
}

// ToISO converts v to a canonical RFC3339 UTC string, or "" when absent.
// Already-canonical strings pass through unchanged.
func ToISO(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return ToISO(*t)
	case primitive.DateTime:
		return ToISO(t.Time())
	case string:
		if t == "" {
			return ""
		}
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return ""
		}
		return parsed.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

func decimal128ToFloat(d primitive.Decimal128) float64 {
	dec, err := decimal.NewFromString(d.String())
	if err != nil {
		return 0
	}
	return dec.InexactFloat64()
}
