package service

import (
	"retail-catalog/internal/models"
	"retail-catalog/internal/normalize"
	"retail-catalog/internal/pricing"
	"retail-catalog/internal/query"
)

// PlaceholderImage is served when a product has no images at all.
const PlaceholderImage = "/images/placeholder.png"

// Uncategorized is the category name shown for products without a resolvable
// category.
const Uncategorized = "Uncategorized"

// ProductView is the normalized listing projection. All numeric and
// timestamp fields pass through the normalizer exactly once, here.
type ProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Seller      string  `json:"seller"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"createdAt"`
}

// ImageView is one image of the detail projection.
type ImageView struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductDetail extends the listing projection with the discount and
// price-change analytics of the detail surface.
type ProductDetail struct {
	ProductView
	Slug                 string                `json:"slug"`
	ShortDescription     string                `json:"shortDescription,omitempty"`
	ComparePrice         *float64              `json:"comparePrice,omitempty"`
	DiscountPercentage   int                   `json:"discountPercentage"`
	Savings              float64               `json:"savings"`
	LowStockThreshold    int                   `json:"lowStockThreshold"`
	IsLowStock           bool                  `json:"isLowStock"`
	Images               []ImageView           `json:"images"`
	PriceChange          *pricing.PriceChange  `json:"priceChange,omitempty"`
	ShowPriceChangeBadge bool                  `json:"showPriceChangeBadge"`
	PriceTrend           *pricing.TrendSummary `json:"priceTrend,omitempty"`
	UpdatedAt            string                `json:"updatedAt"`
}

// Listing is a page of product views plus pagination metadata.
type Listing struct {
	Products   []ProductView    `json:"products"`
	Pagination query.Pagination `json:"pagination"`
}

func newProductView(p *models.Product, categoryName string) ProductView {
	if categoryName == "" {
		categoryName = Uncategorized
	}
	image := p.PrimaryImageURL()
	if image == "" {
		image = PlaceholderImage
	}
	return ProductView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       normalize.ToNumber(p.Price),
		Stock:       p.StockQuantity,
		Category:    categoryName,
		Status:      string(p.Status),
		Seller:      p.SellerName,
		Image:       image,
		CreatedAt:   normalize.ToISO(p.CreatedAt),
	}
}

func newProductDetail(p *models.Product, categoryName string, history []models.PriceHistoryEntry) *ProductDetail {
	price := normalize.ToNumber(p.Price)
	compare := normalize.ToNumberOrNil(p.ComparePrice)
	threshold := p.EffectiveLowStockThreshold()

	images := make([]ImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageView{URL: img.URL, IsPrimary: img.IsPrimary})
	}

	detail := &ProductDetail{
		ProductView:       newProductView(p, categoryName),
		Slug:              p.Slug,
		ShortDescription:  p.ShortDescription,
		ComparePrice:      compare,
		LowStockThreshold: threshold,
		IsLowStock:        p.StockQuantity > 0 && p.StockQuantity < threshold,
		Images:            images,
		UpdatedAt:         normalize.ToISO(p.UpdatedAt),
	}

	if compare != nil {
		detail.DiscountPercentage = pricing.DiscountPercentage(price, *compare)
		detail.Savings = pricing.Savings(price, *compare)
	}

	if len(history) > 0 {
		latest := pricing.Compute(
			normalize.ToNumber(history[0].OldPrice),
			normalize.ToNumber(history[0].NewPrice),
		)
		detail.PriceChange = latest
		detail.ShowPriceChangeBadge = pricing.ShowChangeBadge(latest)

		changes := make([]pricing.PriceChange, 0, len(history))
		for _, entry := range history {
			if pc := pricing.Compute(normalize.ToNumber(entry.OldPrice), normalize.ToNumber(entry.NewPrice)); pc != nil {
				changes = append(changes, *pc)
			}
		}
		detail.PriceTrend = pricing.Trend(changes)
	}

	return detail
}
