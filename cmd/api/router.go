package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autores-backend/internal/shared/middleware"
	"autores-backend/pkg/container"
)

// setupRouter wires global middleware and the route tree. Listing authors
// is the only catalog read behind authentication; everything else on the
// catalog is open, matching the public-read shape of the API.
func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c))

	api := router.Group("/api")
	{
		autor := api.Group("/autor")
		{
			autor.GET("", middleware.AuthMiddleware(c.JWTManager), c.AuthorHandler.List)
			autor.POST("", c.AuthorHandler.Create)
			autor.GET("/:id", c.AuthorHandler.GetByIDOrName)
			autor.PUT("/:id", c.AuthorHandler.Update)
			autor.DELETE("/:id", c.AuthorHandler.Delete)
		}

		libro := api.Group("/libro")
		{
			libro.GET("", c.BookHandler.List)
			libro.POST("", c.BookHandler.Create)
			libro.GET("/:id", c.BookHandler.GetByID)
			libro.PUT("/:id", c.BookHandler.Update)
			libro.PATCH("/:id", c.BookHandler.Patch)
			libro.DELETE("/:id", c.BookHandler.Delete)

			libro.GET("/:id/comentario", c.CommentHandler.List)
			libro.POST("/:id/comentario", c.CommentHandler.Create)
			libro.PUT("/:id/comentario/:commentId", c.CommentHandler.Update)
		}

		cuenta := api.Group("/cuenta")
		{
			cuenta.POST("/registro", c.AccountHandler.Register)
			cuenta.POST("/login", c.AccountHandler.Login)
		}
	}

	return router
}

// healthHandler reports service liveness plus the state of its backing
// stores. A degraded cache does not fail the check.
func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx := ctx.Request.Context()

		dbStatus := "up"
		status := http.StatusOK
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":    dbStatus,
			"database":  dbStatus,
			"cache":     cacheStatus,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC(),
		})
	}
}
