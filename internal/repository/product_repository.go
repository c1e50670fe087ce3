package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"retail-catalog/internal/models"
	"retail-catalog/internal/query"
)

const (
	findTimeout      = 10 * time.Second
	countTimeout     = 5 * time.Second
	aggregateTimeout = 10 * time.Second
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// FindMany returns products matching the filter, newest first with the id as
// a deterministic tie-break so pagination stays stable across requests with
// equal timestamps. A nil page returns the full result set.
func (r *ProductRepository) FindMany(ctx context.Context, filter bson.M, page *query.Page) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	if page != nil {
		opts.SetSkip(page.Skip())
		opts.SetLimit(page.Size)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// Count returns the number of products matching the filter.
func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, countTimeout)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// CountByStatus groups the full catalog by status. Statuses with no products
// are absent from the result.
func (r *ProductRepository) CountByStatus(ctx context.Context) (map[models.ProductStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, aggregateTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group products by status: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.ProductStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode status counts: %w", err)
	}

	counts := make(map[models.ProductStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// FindBySlug returns the active product with the given slug. Inactive and
// draft products are invisible on the detail surface.
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, countTimeout)
	defer cancel()

	filter := bson.M{
		"slug":   slug,
		"status": models.StatusActive,
	}

	var product models.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find product by slug: %w", err)
	}

	return &product, nil
}
