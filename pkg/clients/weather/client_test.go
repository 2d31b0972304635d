package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const forecastPayload = `{
  "current": {
    "temperature_2m": 27.4,
    "relative_humidity_2m": 61,
    "is_day": 1,
    "weather_code": 2,
    "wind_speed_10m": 11.3
  },
  "daily": {
    "time": ["2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13", "2026-03-14"],
    "weather_code": [2, 61, 95, 0, 3],
    "temperature_2m_max": [29.1, 24.0, 22.5, 30.0, 28.0],
    "temperature_2m_min": [18.2, 17.0, 16.8, 19.0, 18.0],
    "precipitation_probability_max": [10, 80, 95, 0, 20]
  }
}`

func TestFetch_MapsCurrentAndThreeDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "-15.7975" || q.Get("longitude") != "-47.8919" {
			t.Errorf("unexpected coordinate: %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("timezone") != "auto" {
			t.Errorf("expected timezone=auto, got %s", q.Get("timezone"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	data, err := client.Fetch(context.Background(), -15.7975, -47.8919)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Current.Temp != 27.4 || data.Current.Humidity != 61 || data.Current.WindSpeed != 11.3 {
		t.Fatalf("current conditions mismapped: %+v", data.Current)
	}
	if !data.Current.IsDay {
		t.Fatal("expected is_day=1 mapped to true")
	}
	if data.Current.WeatherCode != 2 {
		t.Fatalf("expected weather code 2, got %d", data.Current.WeatherCode)
	}

	if len(data.Daily) != 3 {
		t.Fatalf("expected forecast trimmed to 3 days, got %d", len(data.Daily))
	}
	second := data.Daily[1]
	if second.Date != "2026-03-11" || second.MaxTemp != 24.0 || second.MinTemp != 17.0 {
		t.Fatalf("second day mismapped: %+v", second)
	}
	if second.RainProb != 80 || second.WeatherCode != 61 {
		t.Fatalf("second day mismapped: %+v", second)
	}
}

func TestFetch_NonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": true, "reason": "Latitude must be in range"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Fetch(context.Background(), 400, 0); err == nil {
		t.Fatal("expected error for non-success status")
	}
}

func TestDescribe_KnownAndFallbackCodes(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "clear sky"},
		{1, "mostly clear"},
		{2, "partly cloudy"},
		{3, "cloudy"},
		{45, "fog"},
		{48, "fog"},
		{51, "drizzle"},
		{55, "drizzle"},
		{61, "rain"},
		{65, "rain"},
		{80, "rain showers"},
		{82, "rain showers"},
		{95, "thunderstorm"},
		{99, "thunderstorm"},
		{999, "variable"},
		{-1, "variable"},
	}

	for _, tc := range cases {
		if got := Describe(tc.code); got != tc.want {
			t.Errorf("Describe(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
