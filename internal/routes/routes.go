package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recyclehero/recyclehero-golang/internal/config"
	"github.com/recyclehero/recyclehero-golang/internal/handlers"
	"github.com/recyclehero/recyclehero-golang/internal/middleware"
)

// CORSMiddleware tells the browser the configured frontend origin may
// call us, including the Authorization header used for bearer tokens.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(cfg.AllowedOrigin))
	router.Use(middleware.Metrics())

	// --- Operational Endpoints ---
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Category Routes (Public) ---
		api.GET("/categories", h.GetAllCategories)

		// --- Point Routes ---
		api.GET("/points", h.GetApprovedPoints)
		api.GET("/points/nearest", h.GetNearestPoint)
		api.POST("/points", middleware.Auth(), h.CreatePoint)

		// --- Recycling Event Routes ---
		api.GET("/recycling-events", h.GetRecentEvents)
		api.POST("/recycling-events", middleware.Auth(), h.CreateRecyclingEvent)

		// --- Statistics Routes (Public) ---
		api.GET("/recycling-stats", h.GetRecyclingStats)

		// --- Admin-Only Routes ---
		admin := api.Group("/admin")
		admin.Use(middleware.Auth())
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/points", h.GetAllPoints)
			admin.PATCH("/points/:id", h.UpdatePointStatus)
		}
	}

	return router
}
