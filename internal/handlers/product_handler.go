package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail-catalog/internal/models"
	"retail-catalog/internal/query"
	"retail-catalog/internal/service"
	"retail-catalog/internal/stats"
)

const (
	defaultStorefrontLimit = 12
	defaultAdminLimit      = 20
	maxLimit               = 100
)

type ProductHandler struct {
	catalog service.Catalog
}

func NewProductHandler(catalog service.Catalog) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ListResponse struct {
	Products   []service.ProductView `json:"products"`
	Pagination query.Pagination      `json:"pagination"`
	Stats      *stats.CatalogStats   `json:"stats,omitempty"`
}

type DetailResponse struct {
	Product *service.ProductDetail `json:"product"`
}

type storefrontListQuery struct {
	Page        int64  `form:"page,default=1" binding:"min=1"`
	Limit       int64  `form:"limit,default=12" binding:"min=1"`
	SearchQuery string `form:"searchQuery"`
	Category    string `form:"category,default=all"`
	Featured    bool   `form:"featured"`
}

type adminListQuery struct {
	Page       int64  `form:"page,default=1" binding:"min=1"`
	Limit      int64  `form:"limit,default=20" binding:"min=1"`
	Search     string `form:"search"`
	Status     string `form:"status,default=all"`
	CategoryID string `form:"categoryId,default=all"`
	Featured   bool   `form:"featured"`
}

// GET /v1/products
func (h *ProductHandler) ListStorefrontProducts(c *gin.Context) {
	var q storefrontListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.catalog.ListProducts(c.Request.Context(), service.ListParams{
		Page:         q.Page,
		Limit:        clampLimit(q.Limit, defaultStorefrontLimit),
		Search:       q.SearchQuery,
		Status:       string(models.StatusActive),
		CategorySlug: q.Category,
		Featured:     q.Featured,
	})
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Products:   listing.Products,
		Pagination: listing.Pagination,
	})
}

// GET /v1/admin/products
func (h *ProductHandler) ListAdminProducts(c *gin.Context) {
	var q adminListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	listing, catalogStats, err := h.catalog.ListProductsWithStats(c.Request.Context(), service.ListParams{
		Page:       q.Page,
		Limit:      clampLimit(q.Limit, defaultAdminLimit),
		Search:     q.Search,
		Status:     q.Status,
		CategoryID: q.CategoryID,
		Featured:   q.Featured,
	})
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Products:   listing.Products,
		Pagination: listing.Pagination,
		Stats:      catalogStats,
	})
}

// GET /v1/products/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slug is required"})
		return
	}

	detail, err := h.catalog.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, DetailResponse{Product: detail})
}

func (h *ProductHandler) respondListError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "category not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch products"})
}

func clampLimit(limit, fallback int64) int64 {
	if limit < 1 || limit > maxLimit {
		return fallback
	}
	return limit
}
