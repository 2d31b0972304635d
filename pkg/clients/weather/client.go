package weather

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agrogestor/backend/internal/domain/models"
)

// forecastDays is how many daily entries the forecast keeps.
const forecastDays = 3

// Client exposes the forecast lookup used by the application.
type Client interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.WeatherData, error)
}

// APIClient is a resty-backed Open-Meteo client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a forecast client against the given base URL
// (https://api.open-meteo.com in production).
func NewClient(baseURL string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// forecastResponse mirrors the Open-Meteo payload for the fields we request.
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		IsDay       int     `json:"is_day"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipProbMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
	Reason string `json:"reason"`
}

// Fetch retrieves current conditions plus a three day forecast for the
// coordinate.
func (c *APIClient) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherData, error) {
	result := new(forecastResponse)
	apiErr := new(forecastResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', 4, 64),
			"longitude": strconv.FormatFloat(lon, 'f', 4, 64),
			"current":   "temperature_2m,relative_humidity_2m,is_day,weather_code,wind_speed_10m",
			"daily":     "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max",
			"timezone":  "auto",
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		reason := apiErr.Reason
		if reason == "" {
			reason = resp.Status()
		}
		return nil, fmt.Errorf("forecast api error: status=%d, reason=%s", resp.StatusCode(), reason)
	}

	data := &models.WeatherData{
		Current: models.CurrentWeather{
			Temp:        result.Current.Temperature,
			Humidity:    result.Current.Humidity,
			WindSpeed:   result.Current.WindSpeed,
			WeatherCode: result.Current.WeatherCode,
			IsDay:       result.Current.IsDay == 1,
		},
	}

	for i, day := range result.Daily.Time {
		if i >= forecastDays {
			break
		}
		forecast := models.DailyForecast{Date: day}
		if i < len(result.Daily.TempMax) {
			forecast.MaxTemp = result.Daily.TempMax[i]
		}
		if i < len(result.Daily.TempMin) {
			forecast.MinTemp = result.Daily.TempMin[i]
		}
		if i < len(result.Daily.PrecipProbMax) {
			forecast.RainProb = result.Daily.PrecipProbMax[i]
		}
		if i < len(result.Daily.WeatherCode) {
			forecast.WeatherCode = result.Daily.WeatherCode[i]
		}
		data.Daily = append(data.Daily, forecast)
	}

	return data, nil
}

// Describe maps a WMO weather code to a short description. Unmapped codes
// fall back to "variable".
func Describe(code int) string {
	switch code {
	case 0:
		return "clear sky"
	case 1:
		return "mostly clear"
	case 2:
		return "partly cloudy"
	case 3:
		return "cloudy"
	case 45, 48:
		return "fog"
	case 51, 53, 55:
		return "drizzle"
	case 61, 63, 65:
		return "rain"
	case 80, 81, 82:
		return "rain showers"
	case 95, 96, 99:
		return "thunderstorm"
	default:
		return "variable"
	}
}
