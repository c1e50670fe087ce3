package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus is the lifecycle state of a catalog product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
	StatusDraft    ProductStatus = "draft"
)

// DefaultLowStockThreshold applies when a product carries no threshold of its own.
const DefaultLowStockThreshold = 10

// Product is a catalog record. Price fields are stored as Decimal128 and
// normalized to native floats exactly once, at view-assembly time.
type Product struct {
	ID                primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Name              string                `json:"name" bson:"name"`
	Slug              string                `json:"slug" bson:"slug"`
	Description       string                `json:"description,omitempty" bson:"description,omitempty"`
	ShortDescription  string                `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Price             primitive.Decimal128  `json:"price" bson:"price"`
	ComparePrice      *primitive.Decimal128 `json:"compare_price,omitempty" bson:"compare_price,omitempty"`
	CostPrice         *primitive.Decimal128 `json:"-" bson:"cost_price,omitempty"`
	StockQuantity     int                   `json:"stock_quantity" bson:"stock_quantity"`
	LowStockThreshold int                   `json:"low_stock_threshold" bson:"low_stock_threshold"`
	Status            ProductStatus         `json:"status" bson:"status"`
	CategoryID        *primitive.ObjectID   `json:"category_id,omitempty" bson:"category_id,omitempty"`
	Images            []ProductImage        `json:"images,omitempty" bson:"images,omitempty"`
	SellerName        string                `json:"seller_name" bson:"seller_name"`
	IsFeatured        bool                  `json:"is_featured" bson:"is_featured"`
	CreatedAt         time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at" bson:"updated_at"`
}

// ProductImage is one entry of a product's ordered image collection.
// At most one image is flagged primary.
type ProductImage struct {
	URL       string `json:"url" bson:"url"`
	IsPrimary bool   `json:"is_primary" bson:"is_primary"`
}

// PrimaryImageURL returns the primary image, falling back to the first
// image and then to the empty string.
func (p *Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// EffectiveLowStockThreshold is the per-product threshold used for display,
// not for aggregate statistics.
func (p *Product) EffectiveLowStockThreshold() int {
	if p.LowStockThreshold > 0 {
		return p.LowStockThreshold
	}
	return DefaultLowStockThreshold
}
