package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/publication-cms-api/internal/config"
	"github.com/publication-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	spotifyHandler := NewSpotifyHandler(services, log)

	// Guard for protected routes
	authRequired := authMiddleware(services.Auth)
	editorOnly := requireEditorRole()

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		articles := v1.Group("/articles")
		{
			// Public read surface
			articles.GET("", articleHandler.ListPublished)

			// Editorial listing exposes unpublished work, so it sits
			// behind authentication.
			articles.GET("/all", authRequired, articleHandler.ListAll)

			articles.GET("/:id", articleHandler.Get)
			articles.POST("", authRequired, editorOnly, articleHandler.Create)
			articles.POST("/:id/blocks", authRequired, editorOnly, articleHandler.AppendBlock)
			articles.PATCH("/:id/status", authRequired, editorOnly, articleHandler.SetStatus)
			articles.DELETE("/:id", authRequired, editorOnly, articleHandler.Delete)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", articleHandler.ListAuthors)
			authors.POST("", authRequired, editorOnly, articleHandler.CreateAuthor)
		}

		spotify := v1.Group("/spotify")
		{
			spotify.GET("", spotifyHandler.List)
			spotify.GET("/:id", spotifyHandler.Get)
			spotify.POST("", authRequired, editorOnly, spotifyHandler.Create)
			spotify.DELETE("/:id", authRequired, editorOnly, spotifyHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "publication-cms-api",
	})
}

// metricsHandler returns entity counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articles, _ := services.Article.ListAll(ctx)
		published, _ := services.Article.ListPublished(ctx)
		links, _ := services.Spotify.List(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles":  len(articles),
				"published": len(published),
				"spotify":   len(links),
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
