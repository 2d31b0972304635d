package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/server/handlers"
)

// Handlers groups the screen controllers wired into the engine.
type Handlers struct {
	Dashboard  *handlers.DashboardHandler
	Finance    *handlers.FinanceHandler
	Inventory  *handlers.InventoryHandler
	Production *handlers.ProductionHandler
	Alerts     *handlers.AlertHandler
	Weather    *handlers.WeatherHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/dashboard", h.Dashboard.Summary)
		api.GET("/tasks", h.Dashboard.ListTasks)
		api.POST("/tasks", h.Dashboard.CreateTask)
		api.PATCH("/tasks/:id/toggle", h.Dashboard.ToggleTask)

		api.GET("/transactions", h.Finance.List)
		api.POST("/transactions", h.Finance.Create)

		api.GET("/inventory", h.Inventory.List)
		api.POST("/inventory", h.Inventory.Create)
		api.PUT("/inventory/:id", h.Inventory.Update)
		api.DELETE("/inventory/:id", h.Inventory.Delete)
		api.POST("/inventory/:id/adjust", h.Inventory.Adjust)

		api.GET("/production", h.Production.List)
		api.POST("/production", h.Production.Create)

		api.GET("/alerts/harvest-date", h.Alerts.HarvestDate)
		api.GET("/alerts", h.Alerts.List)
		api.POST("/alerts", h.Alerts.Create)
		api.DELETE("/alerts/:id", h.Alerts.Delete)
		api.POST("/alerts/:id/harvest", h.Alerts.ConfirmHarvest)

		api.GET("/weather", h.Weather.Forecast)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
