package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"retail-catalog/internal/models"
)

// PriceHistoryRepository reads the price transitions recorded by the pricing
// collaborator. The collection may be empty or absent; callers treat that as
// "no price change to report".
type PriceHistoryRepository struct {
	collection *mongo.Collection
}

func NewPriceHistoryRepository(collection *mongo.Collection) *PriceHistoryRepository {
	return &PriceHistoryRepository{
		collection: collection,
	}
}

// RecentForProduct returns up to limit entries, newest first.
func (r *PriceHistoryRepository) RecentForProduct(ctx context.Context, productID primitive.ObjectID, limit int64) ([]models.PriceHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "changed_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find price history: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.PriceHistoryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode price history: %w", err)
	}

	return entries, nil
}
