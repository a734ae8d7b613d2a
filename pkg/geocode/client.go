// Package geocode is a thin client for a Google-style geocoding API, used
// only by the presentation layer's map view. The merge/score path never
// depends on it; failures degrade to unmatched results.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// AddressInput identifies a location to geocode.
type AddressInput struct {
	City    string
	State   string
	Country string
}

// Result is a geocoding outcome. Matched is false when the provider could
// not resolve the address; Latitude/Longitude are zero in that case.
type Result struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Matched   bool    `json:"matched"`
}

// Point returns the result as a WGS84 point, or nil for non-matches.
func (r *Result) Point() *geom.Point {
	if !r.Matched {
		return nil
	}
	return geom.NewPointFlat(geom.XY, []float64{r.Longitude, r.Latitude}).SetSRID(4326)
}

// Client geocodes addresses with rate limiting and an injected cache.
type Client struct {
	key     string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cache   *Cache
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRateLimit overrides the default request rate.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSec), burst) }
}

// WithCache installs a result cache. Without one every call hits the API.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a geocoding client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		key:     apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves an address to coordinates. Unresolvable addresses return
// an unmatched Result, not an error; errors mean the provider itself failed.
func (c *Client) Geocode(ctx context.Context, addr AddressInput) (*Result, error) {
	oneLine := formatOneLine(addr)
	if oneLine == "" {
		return &Result{Matched: false}, nil
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(addr); ok {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: rate limit")
	}

	params := url.Values{
		"address": {oneLine},
		"key":     {c.key},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: read body")
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "geocode: parse response")
	}

	result := &Result{}
	if parsed.Status == "OK" && len(parsed.Results) > 0 {
		loc := parsed.Results[0].Geometry.Location
		result.Latitude = loc.Lat
		result.Longitude = loc.Lng
		result.Matched = true
	} else {
		zap.L().Debug("geocode: no match", zap.String("address", oneLine), zap.String("status", parsed.Status))
	}

	if c.cache != nil {
		c.cache.Put(addr, result)
	}
	return result, nil
}

func formatOneLine(addr AddressInput) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{addr.City, addr.State, addr.Country} {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}
