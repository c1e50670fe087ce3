package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"retail-catalog/internal/config"
	"retail-catalog/internal/database"
	"retail-catalog/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "catalog-api",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	router := gin.Default()
	routes.RegisterRoutes(router, db, logger)

	logger.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
