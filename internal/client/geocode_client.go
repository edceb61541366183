package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"startup-hub-api/internal/config"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/metrics"
)

var (
	// ErrNoAPIKey means the service runs without a geocoding key and the
	// endpoint is degraded, not broken
	ErrNoAPIKey = errors.New("geocode: api key not configured")
	// ErrAddressNotFound means the provider returned no result for the address
	ErrAddressNotFound = errors.New("geocode: address not found")
)

// GeocodeClient resolves an address to coordinates
type GeocodeClient interface {
	Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error)
}

// geocodeClientImpl proxies the Google Geocoding API with a process-local
// cache. Addresses repeat heavily (every workspace detail view), so the
// cache has no TTL; a restart clears it.
type geocodeClientImpl struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *zap.Logger

	mu    sync.RWMutex
	cache map[string]dto.GeocodeResponse
}

// NewGeocodeClient creates a new GeocodeClient
func NewGeocodeClient(cfg config.GeocodeConfig, m *metrics.Metrics, logger *zap.Logger) GeocodeClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &geocodeClientImpl{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
		logger:     logger,
		cache:      make(map[string]dto.GeocodeResponse),
	}
}

// geocodeAPIResponse mirrors the provider's response shape
type geocodeAPIResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves address to coordinates, serving repeats from the cache
func (c *geocodeClientImpl) Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	c.mu.RLock()
	cached, ok := c.cache[address]
	c.mu.RUnlock()
	if ok {
		c.recordCache("hit")
		cached.Cached = true
		return &cached, nil
	}
	c.recordCache("miss")

	result, err := c.fetch(ctx, address)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[address] = *result
	c.mu.Unlock()
	return result, nil
}

func (c *geocodeClientImpl) fetch(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	params.Set("language", "ja")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.recordCall(0, duration, err)
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordCall(resp.StatusCode, duration, nil)
		return nil, fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	var body geocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.recordCall(resp.StatusCode, duration, err)
		return nil, fmt.Errorf("geocode: decode failed: %w", err)
	}
	c.recordCall(resp.StatusCode, duration, nil)

	if body.Status != "OK" || len(body.Results) == 0 {
		c.logger.Debug("住所の解決に失敗", zap.String("address", address), zap.String("status", body.Status))
		return nil, ErrAddressNotFound
	}

	loc := body.Results[0].Geometry.Location
	return &dto.GeocodeResponse{Address: address, Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (c *geocodeClientImpl) recordCache(result string) {
	if c.metrics != nil {
		c.metrics.RecordGeocodeCache(result)
	}
}

func (c *geocodeClientImpl) recordCall(statusCode int, duration time.Duration, err error) {
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall("geocode", http.MethodGet, statusCode, duration, err)
	}
}
