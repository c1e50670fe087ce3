package service

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"retail-catalog/internal/models"
	"retail-catalog/internal/query"
	"retail-catalog/internal/stats"
)

// priceHistoryWindow bounds how many transitions feed the trend summary.
const priceHistoryWindow = 24

type ProductStore interface {
	FindMany(ctx context.Context, filter bson.M, page *query.Page) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	CountByStatus(ctx context.Context) (map[models.ProductStatus]int64, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type CategoryStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error)
}

type PriceHistoryStore interface {
	RecentForProduct(ctx context.Context, productID primitive.ObjectID, limit int64) ([]models.PriceHistoryEntry, error)
}

// Catalog is the read-side of the product catalog: filtered listings,
// slug lookup, and the analytics attached to both.
type Catalog interface {
	ListProducts(ctx context.Context, p ListParams) (*Listing, error)
	ListProductsWithStats(ctx context.Context, p ListParams) (*Listing, *stats.CatalogStats, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProductDetail, error)
}

type catalog struct {
	products   ProductStore
	categories CategoryStore
	history    PriceHistoryStore
	logger     hclog.Logger
}

func NewCatalog(products ProductStore, categories CategoryStore, history PriceHistoryStore, logger hclog.Logger) Catalog {
	return &catalog{
		products:   products,
		categories: categories,
		history:    history,
		logger:     logger,
	}
}

// ListParams are the listing inputs after transport-level defaulting.
// CategoryID is the admin identifier filter, CategorySlug the storefront
// slug filter; both observed behaviors are preserved separately.
type ListParams struct {
	Page         int64
	Limit        int64
	Search       string
	Status       string
	CategoryID   string
	CategorySlug string
	Featured     bool
}

func (p ListParams) queryParams() query.Params {
	return query.Params{
		Search:       p.Search,
		Status:       p.Status,
		CategoryID:   p.CategoryID,
		CategorySlug: p.CategorySlug,
		Featured:     p.Featured,
	}
}

func (s *catalog) ListProducts(ctx context.Context, p ListParams) (*Listing, error) {
	records, pagination, _, err := s.listRecords(ctx, p)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, records)
	if err != nil {
		return nil, err
	}

	return &Listing{Products: views, Pagination: pagination}, nil
}

// ListProductsWithStats returns the listing plus the stats block. A failed
// stats aggregation does not sink the response: the listing is returned with
// a nil stats block and the failure is logged server-side.
func (s *catalog) ListProductsWithStats(ctx context.Context, p ListParams) (*Listing, *stats.CatalogStats, error) {
	records, pagination, filter, err := s.listRecords(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	views, err := s.buildViews(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	catalogStats, err := stats.Compute(ctx, s.products, filter)
	if err != nil {
		s.logger.Error("stats aggregation failed, returning listing without stats", "error", err)
		catalogStats = nil
	}

	return &Listing{Products: views, Pagination: pagination}, catalogStats, nil
}

// listRecords executes one retrieval mode. Featured, search and category
// return their full result set in a single call; their total is the size of
// the already-filtered set and the whole array is treated as the current
// page. Only paginated-all applies skip/limit, and its find and count run
// concurrently.
func (s *catalog) listRecords(ctx context.Context, p ListParams) ([]models.Product, query.Pagination, bson.M, error) {
	qp := p.queryParams()
	mode := qp.ResolveMode()

	s.logger.Debug("listing products", "mode", mode.String(), "page", p.Page, "limit", p.Limit)

	switch mode {
	case query.ModeFeatured:
		return s.listUnpaginated(ctx, p, query.FeaturedFilter())

	case query.ModeSearch:
		return s.listUnpaginated(ctx, p, query.SearchFilter(p.Search))

	case query.ModeCategory:
		category, err := s.resolveCategory(ctx, p)
		if err != nil {
			if !errors.Is(err, models.ErrNotFound) {
				s.logger.Error("category resolution failed", "error", err)
			}
			return nil, query.Pagination{}, nil, err
		}
		return s.listUnpaginated(ctx, p, query.CategoryFilter(category.ID))

	default:
		return s.listPaginated(ctx, p)
	}
}

func (s *catalog) listUnpaginated(ctx context.Context, p ListParams, filter bson.M) ([]models.Product, query.Pagination, bson.M, error) {
	records, err := s.products.FindMany(ctx, filter, nil)
	if err != nil {
		s.logger.Error("product query failed", "error", err)
		return nil, query.Pagination{}, nil, err
	}
	pagination := query.NewPagination(p.Page, p.Limit, int64(len(records)))
	return records, pagination, filter, nil
}

func (s *catalog) listPaginated(ctx context.Context, p ListParams) ([]models.Product, query.Pagination, bson.M, error) {
	filter := query.BuildFilter(query.Params{Status: p.Status})
	page := &query.Page{Number: p.Page, Size: p.Limit}

	var (
		records []models.Product
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.products.FindMany(gctx, filter, page)
		if err != nil {
			return err
		}
		records = found
		return nil
	})
	g.Go(func() error {
		count, err := s.products.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("product query failed", "error", err)
		return nil, query.Pagination{}, nil, err
	}

	return records, query.NewPagination(p.Page, p.Limit, total), filter, nil
}

func (s *catalog) resolveCategory(ctx context.Context, p ListParams) (*models.Category, error) {
	if p.CategorySlug != "" && p.CategorySlug != query.All {
		return s.categories.FindBySlug(ctx, p.CategorySlug)
	}

	oid, err := primitive.ObjectIDFromHex(p.CategoryID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return s.categories.FindByID(ctx, oid)
}

func (s *catalog) buildViews(ctx context.Context, records []models.Product) ([]ProductView, error) {
	ids := make([]primitive.ObjectID, 0, len(records))
	seen := make(map[primitive.ObjectID]bool, len(records))
	for i := range records {
		if id := records[i].CategoryID; id != nil && !seen[*id] {
			seen[*id] = true
			ids = append(ids, *id)
		}
	}

	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("category projection failed", "error", err)
		return nil, err
	}

	views := make([]ProductView, 0, len(records))
	for i := range records {
		p := &records[i]
		name := ""
		if p.CategoryID != nil {
			if c, ok := categories[*p.CategoryID]; ok {
				name = c.Name
			}
		}
		views = append(views, newProductView(p, name))
	}
	return views, nil
}

func (s *catalog) GetProductBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("product lookup failed", "slug", slug, "error", err)
		}
		return nil, err
	}

	categoryName := ""
	if product.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, *product.CategoryID)
		switch {
		case err == nil:
			categoryName = category.Name
		case errors.Is(err, models.ErrNotFound):
			// Dangling reference: fall through to the Uncategorized display.
		default:
			s.logger.Error("category lookup failed", "slug", slug, "error", err)
			return nil, err
		}
	}

	history, err := s.history.RecentForProduct(ctx, product.ID, priceHistoryWindow)
	if err != nil {
		// The price-history collaborator is optional; its absence never
		// sinks the detail response.
		s.logger.Warn("price history unavailable", "slug", slug, "error", err)
		history = nil
	}

	return newProductDetail(product, categoryName, history), nil
}
