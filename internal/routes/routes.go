package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/mongo"

	"retail-catalog/internal/handlers"
	"retail-catalog/internal/repository"
	"retail-catalog/internal/service"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, logger hclog.Logger) {
	products := repository.NewProductRepository(db.Collection("products"))
	categories := repository.NewCategoryRepository(db.Collection("categories"))
	history := repository.NewPriceHistoryRepository(db.Collection("price_history"))

	catalog := service.NewCatalog(products, categories, history, logger.Named("catalog"))
	h := handlers.NewProductHandler(catalog)

	v1 := router.Group("/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		v1.GET("/products", h.ListStorefrontProducts)
		v1.GET("/products/:slug", h.GetProductBySlug)
		v1.GET("/admin/products", h.ListAdminProducts)
	}
}
