// Package stats computes the catalog statistics block shown next to admin
// listings. Total respects the caller's current filter; the status breakdown
// and stock counts are always taken over the full catalog. The counts are
// independent reads with no snapshot consistency between them; the data is
// advisory, not transactional.
package stats

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"retail-catalog/internal/models"
)

// LowStockThreshold is the fixed aggregate threshold. Per-product thresholds
// only affect individual display, never these counts.
const LowStockThreshold = 10

// CatalogStats is the stats block of a listing response.
type CatalogStats struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	Inactive   int64 `json:"inactive"`
	Draft      int64 `json:"draft"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

// Source is the slice of the record store the aggregator reads from.
type Source interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	CountByStatus(ctx context.Context) (map[models.ProductStatus]int64, error)
}

// Compute runs the four independent reads concurrently and fails as a whole
// if any of them fails; callers decide whether a missing stats block sinks
// the response.
func Compute(ctx context.Context, src Source, filter bson.M) (*CatalogStats, error) {
	var result CatalogStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := src.Count(gctx, filter)
		if err != nil {
			return err
		}
		result.Total = total
		return nil
	})

	g.Go(func() error {
		counts, err := src.CountByStatus(gctx)
		if err != nil {
			return err
		}
		result.Active = counts[models.StatusActive]
		result.Inactive = counts[models.StatusInactive]
		result.Draft = counts[models.StatusDraft]
		return nil
	})

	g.Go(func() error {
		low, err := src.Count(gctx, bson.M{
			"stock_quantity": bson.M{"$gt": 0, "$lt": LowStockThreshold},
		})
		if err != nil {
			return err
		}
		result.LowStock = low
		return nil
	})

	g.Go(func() error {
		out, err := src.Count(gctx, bson.M{"stock_quantity": 0})
		if err != nil {
			return err
		}
		result.OutOfStock = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
