package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	weatherclient "github.com/agrogestor/backend/pkg/clients/weather"
)

// Service is a thin read-through cache over the forecast client. Entries
// live in memory only and expire after the configured TTL.
type Service struct {
	client      weatherclient.Client
	fallbackLat float64
	fallbackLon float64
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	data      *models.WeatherData
	fetchedAt time.Time
}

// NewService builds the weather service. The fallback coordinate is used
// when the caller supplies none, mirroring the geolocation-denied path.
func NewService(client weatherclient.Client, fallbackLat, fallbackLon float64, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:      client,
		fallbackLat: fallbackLat,
		fallbackLon: fallbackLon,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
		cache:       make(map[string]cacheEntry),
	}
}

// Forecast returns the forecast for the coordinate, or for the fallback
// coordinate when lat/lon are nil. There is no retry beyond that single
// fallback; the caller retries manually.
func (s *Service) Forecast(ctx context.Context, lat, lon *float64) (*models.WeatherData, error) {
	la, lo := s.fallbackLat, s.fallbackLon
	if lat != nil && lon != nil {
		la, lo = *lat, *lon
	} else {
		s.logger.Info("no coordinate supplied, using fallback",
			zap.Float64("lat", la), zap.Float64("lon", lo))
	}

	key := fmt.Sprintf("%.2f,%.2f", la, lo)

	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return entry.data, nil
	}
	s.mu.Unlock()

	data, err := s.client.Fetch(ctx, la, lo)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{data: data, fetchedAt: s.now()}
	s.mu.Unlock()

	return data, nil
}
