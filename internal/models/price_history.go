package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceHistoryEntry is one recorded price transition for a product. The
// collection is written by the pricing collaborator; this service only reads it.
type PriceHistoryEntry struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID   `json:"product_id" bson:"product_id"`
	OldPrice  primitive.Decimal128 `json:"old_price" bson:"old_price"`
	NewPrice  primitive.Decimal128 `json:"new_price" bson:"new_price"`
	ChangedAt time.Time            `json:"changed_at" bson:"changed_at"`
}
