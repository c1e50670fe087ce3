package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToNumberRepresentations(t *testing.T) {
	d128, err := primitive.ParseDecimal128("19.99")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		input any
		want  float64
	}{
		{"native float", 19.99, 19.99},
		{"numeric string", "19.99", 19.99},
		{"json number", json.Number("19.99"), 19.99},
		{"decimal object", decimal.NewFromFloat(19.99), 19.99},
		{"decimal128", d128, 19.99},
		{"int", 20, 20},
		{"nil", nil, 0},
		{"garbage string", "not-a-price", 0},
		{"nil decimal pointer", (*decimal.Decimal)(nil), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ToNumber(tc.input), 1e-9)
		})
	}
}

func TestToNumberIdempotent(t *testing.T) {
	d128, err := primitive.ParseDecimal128("42.50")
	require.NoError(t, err)

	inputs := []any{"42.50", decimal.NewFromFloat(42.50), d128, 42.50}
	for _, in := range inputs {
		first := ToNumber(in)
		assert.Equal(t, first, ToNumber(first))
		assert.InDelta(t, 42.50, first, 1e-9)
	}
}

func TestToNumberOrNil(t *testing.T) {
	assert.Nil(t, ToNumberOrNil(nil))
	assert.Nil(t, ToNumberOrNil("not-a-price"))
	assert.Nil(t, ToNumberOrNil((*primitive.Decimal128)(nil)))

	got := ToNumberOrNil("99.95")
	require.NotNil(t, got)
	assert.InDelta(t, 99.95, *got, 1e-9)

	zero := ToNumberOrNil(0.0)
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero)
}

func TestToISO(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "2025-03-14T09:26:53Z", ToISO(ts))
	assert.Equal(t, "2025-03-14T09:26:53Z", ToISO("2025-03-14T09:26:53Z"))
	assert.Equal(t, "2025-03-14T09:26:53Z", ToISO(primitive.NewDateTimeFromTime(ts)))
	assert.Equal(t, "", ToISO(nil))
	assert.Equal(t, "", ToISO(time.Time{}))
	assert.Equal(t, "", ToISO("yesterday"))

	// Non-UTC input canonicalizes to UTC.
	offset := time.FixedZone("CET", 3600)
	assert.Equal(t, "2025-03-14T08:26:53Z", ToISO(ts.In(offset).Add(-time.Hour)))
}

func TestToISOIdempotent(t *testing.T) {
	out := ToISO(time.Now())
	assert.Equal(t, out, ToISO(out))
}
