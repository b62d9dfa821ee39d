package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL     = "https://api.unsplash.com"
	DefaultQuery       = "city,urban,cityscape,skyline"
	DefaultOrientation = "landscape"
	// DefaultRatePerHour is the demo-application limit of the Unsplash API.
	DefaultRatePerHour = 50
)

var ErrMissingAccessKey = errors.New("unsplash: access key is not configured")

// Client is the HTTP wrapper for the Unsplash REST API.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Unsplash client allowed ratePerHour requests per hour.
func NewClient(baseURL, accessKey string, ratePerHour int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if ratePerHour <= 0 {
		ratePerHour = DefaultRatePerHour
	}
	return &Client{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Hour/time.Duration(ratePerHour)), ratePerHour),
	}
}

// Random fetches one random photo via GET /photos/random.
func (c *Client) Random(ctx context.Context, req RandomRequest) (*Photo, error) {
	if c.accessKey == "" {
		return nil, ErrMissingAccessKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("unsplash rate limit: %w", err)
	}

	q := url.Values{}
	if req.Query != "" {
		q.Set("query", req.Query)
	}
	if req.Orientation != "" {
		q.Set("orientation", req.Orientation)
	}
	endpoint := fmt.Sprintf("%s/photos/random?%s", c.baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build random photo request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Client-ID "+c.accessKey)
	httpReq.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call unsplash random API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unsplash API random error %d: %s", resp.StatusCode, string(raw))
	}

	var photo Photo
	if err := json.NewDecoder(resp.Body).Decode(&photo); err != nil {
		return nil, fmt.Errorf("failed to decode unsplash random response: %w", err)
	}
	return &photo, nil
}
