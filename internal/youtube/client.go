package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	// DefaultEndpoint is YouTube's public oEmbed endpoint.
	DefaultEndpoint = "https://www.youtube.com/oembed"
	watchURLPrefix  = "https://www.youtube.com/watch?v="
)

// ErrLookup is wrapped by every error FetchEmbed and FetchTitle return.
var ErrLookup = errors.New("video title lookup failed")

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithEndpoint sets a custom oEmbed endpoint (useful for testing).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithRateLimit caps outbound lookups at rps requests per second.
// Zero or a negative value disables the limiter.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// Client is a YouTube oEmbed client.
type Client struct {
	endpoint   string
	httpClient HTTPClient
	limiter    *rate.Limiter
}

// NewClient creates a new oEmbed client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WatchURL returns the public watch-page URL of a video.
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// FetchTitle returns the title of the video. A successful response without
// a title yields "" and a nil error.
func (c *Client) FetchTitle(ctx context.Context, videoID string) (string, error) {
	embed, err := c.FetchEmbed(ctx, videoID)
	if err != nil {
		return "", err
	}
	return embed.Title, nil
}

// FetchEmbed retrieves the oEmbed document of a video.
func (c *Client) FetchEmbed(ctx context.Context, videoID string) (*Embed, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLookup, videoID, err)
		}
	}

	body, err := c.doRequest(ctx, c.lookupURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLookup, videoID, err)
	}

	var embed Embed
	if err := json.Unmarshal(body, &embed); err != nil {
		return nil, fmt.Errorf("%w: %s: failed to parse oEmbed response: %v", ErrLookup, videoID, err)
	}

	return &embed, nil
}

func (c *Client) lookupURL(videoID string) string {
	q := url.Values{}
	q.Set("url", WatchURL(videoID))
	q.Set("format", "json")
	return c.endpoint + "?" + q.Encode()
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, handleAPIError(resp.StatusCode)
	}

	return body, nil
}

func handleAPIError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("oEmbed rejected the request - check the video identifier")
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("video is private or embedding is disabled")
	case http.StatusNotFound:
		return fmt.Errorf("video not found")
	case http.StatusTooManyRequests:
		return fmt.Errorf("oEmbed rate limit exceeded")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("oEmbed server error (status %d)", statusCode)
	default:
		return fmt.Errorf("oEmbed error (status %d)", statusCode)
	}
}
