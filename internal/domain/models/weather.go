package models

// CurrentWeather holds the conditions at the requested coordinate.
type CurrentWeather struct {
	Temp        float64 `json:"temp"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	WeatherCode int     `json:"weatherCode"`
	IsDay       bool    `json:"isDay"`
}

// DailyForecast is one day of the short-range forecast.
type DailyForecast struct {
	Date        string  `json:"date"`
	MaxTemp     float64 `json:"maxTemp"`
	MinTemp     float64 `json:"minTemp"`
	RainProb    float64 `json:"rainProb"`
	WeatherCode int     `json:"weatherCode"`
}

// WeatherData bundles current conditions with the next three days.
type WeatherData struct {
	Current CurrentWeather  `json:"current"`
	Daily   []DailyForecast `json:"daily"`
}
