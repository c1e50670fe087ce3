package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products for browsing. Slug is unique and URL-safe.
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Slug        string             `json:"slug" bson:"slug"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}
