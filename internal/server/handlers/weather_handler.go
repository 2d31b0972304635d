package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	weathersvc "github.com/agrogestor/backend/internal/service/weather"
	weatherclient "github.com/agrogestor/backend/pkg/clients/weather"
)

// WeatherHandler serves the forecast widget.
type WeatherHandler struct {
	weather *weathersvc.Service
	logger  *zap.Logger
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(svc *weathersvc.Service, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{weather: svc, logger: logger}
}

// Forecast returns current conditions plus three days of forecast. The
// lat/lon query parameters carry the device's coordinate; when absent or
// unparsable the configured fallback coordinate is used.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	var lat, lon *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lon"), 64); err == nil {
		lon = &v
	}

	data, err := h.weather.Forecast(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.Error("failed fetching forecast", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to fetch forecast"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current":     data.Current,
		"daily":       data.Daily,
		"description": weatherclient.Describe(data.Current.WeatherCode),
	})
}
