package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jumbohomes/backend/internal/config"
	"github.com/jumbohomes/backend/internal/dataset"
	"github.com/jumbohomes/backend/internal/http/handlers"
	"github.com/jumbohomes/backend/internal/http/middleware"
	"github.com/jumbohomes/backend/internal/overrides"

	_ "github.com/jumbohomes/backend/docs"
)

func Router(cfg config.Config, data *dataset.Store, loader dataset.Loader, ov *overrides.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Data:      data,
		Loader:    loader,
		Overrides: ov,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
		TopLimit:  cfg.TopProjects,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/leaderboard", h.Leaderboard)
		api.GET("/supply", h.Supply)
		api.GET("/demand", h.Demand)
		api.GET("/sku", h.SKU)
		api.GET("/price-revisions", h.PriceRevisions)
		api.GET("/offers", h.Offers)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/overrides", h.SetOverride)
		admin.GET("/overrides", h.ListOverrides)
		admin.DELETE("/overrides/:person", h.DeleteOverride)
		admin.POST("/reload", h.Reload)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
