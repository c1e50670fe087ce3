package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveModePrecedence(t *testing.T) {
	testCases := []struct {
		name   string
		params Params
		want   Mode
	}{
		{"no signals", Params{}, ModePaginatedAll},
		{"defaults only", Params{Status: All, CategoryID: All}, ModePaginatedAll},
		{"featured alone", Params{Featured: true}, ModeFeatured},
		{"featured beats search", Params{Featured: true, Search: "shoes"}, ModeFeatured},
		{"featured beats everything", Params{Featured: true, Search: "shoes", CategorySlug: "footwear", Status: "draft"}, ModeFeatured},
		{"search alone", Params{Search: "shoes"}, ModeSearch},
		{"search beats category", Params{Search: "shoes", CategorySlug: "footwear"}, ModeSearch},
		{"search beats category id", Params{Search: "shoes", CategoryID: "abc"}, ModeSearch},
		{"category slug", Params{CategorySlug: "footwear"}, ModeCategory},
		{"category id", Params{CategoryID: "663e1c0a9f1b2c3d4e5f6a7b"}, ModeCategory},
		{"category all is no category", Params{CategorySlug: All}, ModePaginatedAll},
		{"status only", Params{Status: "draft"}, ModePaginatedAll},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.params.ResolveMode())
		})
	}
}

func TestBuildFilter(t *testing.T) {
	t.Run("empty params give empty filter", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildFilter(Params{}))
	})

	t.Run("status all gives no predicate", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildFilter(Params{Status: All, CategoryID: All}))
	})

	t.Run("search builds case-insensitive or", func(t *testing.T) {
		filter := BuildFilter(Params{Search: "shoes"})
		want := bson.M{"$or": []bson.M{
			{"name": bson.M{"$regex": "shoes", "$options": "i"}},
			{"description": bson.M{"$regex": "shoes", "$options": "i"}},
		}}
		assert.Equal(t, want, filter)
	})

	t.Run("unrecognized status passes through verbatim", func(t *testing.T) {
		filter := BuildFilter(Params{Status: "archived"})
		assert.Equal(t, bson.M{"status": "archived"}, filter)
	})

	t.Run("valid category id becomes object id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		filter := BuildFilter(Params{CategoryID: oid.Hex()})
		assert.Equal(t, bson.M{"category_id": oid}, filter)
	})

	t.Run("malformed category id kept as zero-match predicate", func(t *testing.T) {
		filter := BuildFilter(Params{CategoryID: "not-an-id"})
		assert.Equal(t, bson.M{"category_id": "not-an-id"}, filter)
	})
}

func TestPagination(t *testing.T) {
	testCases := []struct {
		name           string
		page, limit    int64
		total          int64
		wantTotalPages int64
	}{
		{"exact division", 1, 10, 100, 10},
		{"remainder rounds up", 1, 12, 25, 3},
		{"single partial page", 1, 20, 5, 1},
		{"empty result", 1, 12, 0, 0},
		{"limit one", 3, 1, 7, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
		})
	}
}

func TestPageSkip(t *testing.T) {
	require.Equal(t, int64(0), Page{Number: 1, Size: 20}.Skip())
	require.Equal(t, int64(24), Page{Number: 3, Size: 12}.Skip())
}
