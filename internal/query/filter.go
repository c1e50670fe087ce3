// Package query translates request parameters into the filter, retrieval-mode
// and pagination shapes the record store consumes.
package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// All is the sentinel parameter value meaning "no predicate".
const All = "all"

// Params is the closed set of listing inputs. CategoryID carries the admin
// identifier filter and CategorySlug the storefront slug filter; they are
// distinct fields on purpose and are never unified.
type Params struct {
	Search       string
	Status       string
	CategoryID   string
	CategorySlug string
	Featured     bool
}

// BuildFilter translates params into a store filter. Status and category
// values are matched verbatim without enum validation, so an unrecognized
// value yields zero matches rather than an error.
func BuildFilter(p Params) bson.M {
	filter := bson.M{}

	if p.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": p.Search, "$options": "i"}},
			{"description": bson.M{"$regex": p.Search, "$options": "i"}},
		}
	}

	if p.Status != "" && p.Status != All {
		filter["status"] = p.Status
	}

	if p.CategoryID != "" && p.CategoryID != All {
		if oid, err := primitive.ObjectIDFromHex(p.CategoryID); err == nil {
			filter["category_id"] = oid
		} else {
			// Malformed id: keep the predicate so it matches nothing.
			filter["category_id"] = p.CategoryID
		}
	}

	return filter
}

// SearchFilter is the free-text mode filter: a case-insensitive contains
// match over name and description, ignoring status and category.
func SearchFilter(term string) bson.M {
	return BuildFilter(Params{Search: term})
}

// FeaturedFilter selects the curated featured subset, ignoring all other
// filters.
func FeaturedFilter() bson.M {
	return bson.M{"is_featured": true}
}

// CategoryFilter selects products of a resolved category.
func CategoryFilter(id primitive.ObjectID) bson.M {
	return bson.M{"category_id": id}
}
