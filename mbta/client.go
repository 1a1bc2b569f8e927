package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// RequestError wraps transport and HTTP-status failures from the MBTA API.
// The planner core treats it as opaque.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("mbta request %s: %v", e.URL, e.Err) }
func (e *RequestError) Unwrap() error { return e.Err }

// Config holds MBTA client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// Client wraps the MBTA v3 API. Transient errors (rate limits, server
// failures) are retried with exponential backoff; GET is the only verb.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates an MBTA API client, filling unset config fields with
// defaults matching the public API.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-v3.mbta.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Backoff == 0 {
		cfg.Backoff = 300 * time.Millisecond
	}
	return &Client{cfg: cfg, httpClient: &http.Client{Timeout: cfg.Timeout}}
}

var retryStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.cfg.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.cfg.Backoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, &RequestError{URL: u, Err: ctx.Err()}
			case <-time.After(wait):
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, &RequestError{URL: u, Err: err}
		}
		req.Header.Set("Accept", "application/vnd.api+json")
		if c.cfg.APIKey != "" {
			req.Header.Set("x-api-key", c.cfg.APIKey)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if retryStatus[resp.StatusCode] {
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &RequestError{URL: u, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
		}
		return body, nil
	}
	return nil, &RequestError{URL: u, Err: fmt.Errorf("retries exhausted: %w", lastErr)}
}

// GetRoutes returns routes from /routes, optionally filtered by GTFS route
// type.
func (c *Client) GetRoutes(ctx context.Context, routeTypes []int) (*RoutesResponse, error) {
	params := url.Values{}
	if len(routeTypes) > 0 {
		ts := make([]string, len(routeTypes))
		for i, t := range routeTypes {
			ts[i] = strconv.Itoa(t)
		}
		params.Set("filter[type]", strings.Join(ts, ","))
	}
	body, err := c.get(ctx, "/routes", params)
	if err != nil {
		return nil, err
	}
	var out RoutesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &RequestError{URL: c.cfg.BaseURL + "/routes", Err: fmt.Errorf("invalid JSON response: %w", err)}
	}
	return &out, nil
}

// GetStops returns stops from /stops, optionally filtered by route ids.
// Stops come back in route order for single-route filters.
func (c *Client) GetStops(ctx context.Context, routeIDs []string) (*StopsResponse, error) {
	params := url.Values{}
	if len(routeIDs) > 0 {
		params.Set("filter[route]", strings.Join(routeIDs, ","))
	}
	body, err := c.get(ctx, "/stops", params)
	if err != nil {
		return nil, err
	}
	var out StopsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &RequestError{URL: c.cfg.BaseURL + "/stops", Err: fmt.Errorf("invalid JSON response: %w", err)}
	}
	return &out, nil
}
