package blog

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// DefaultFeedURL is the blog feed rendered on the landing page.
const DefaultFeedURL = "https://blog.justcloud.pl/rss.xml"

var (
	// ErrTransport reports that the feed could not be retrieved (network error or non-2xx status).
	ErrTransport = errors.New("feed transport failure")
	// ErrParse reports that the response body is not a readable syndication document.
	ErrParse = errors.New("feed parse failure")
	// ErrNoPosts reports a well-formed feed without any item.
	ErrNoPosts = errors.New("no blog posts found")
)

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

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client fetches and parses the blog RSS feed.
type Client struct {
	httpClient HTTPClient
	strict     *bluemonday.Policy
	logger     *slog.Logger
}

// NewClient creates a new blog feed client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		strict:     bluemonday.StrictPolicy(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPosts downloads feedURL and returns at most limit posts in document
// order. A limit of zero or less keeps every item. Any failure discards the
// whole result; the returned error wraps ErrTransport, ErrParse or ErrNoPosts.
func (c *Client) FetchPosts(ctx context.Context, feedURL string, limit int) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: feed returned HTTP %d for %s", ErrTransport, resp.StatusCode, feedURL)
	}

	// gofeed parsers keep per-document state, so each fetch gets its own.
	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if feed.FeedType != "rss" {
		return nil, fmt.Errorf("%w: expected an RSS document, got %s", ErrParse, feed.FeedType)
	}

	c.logger.Debug("blog feed retrieved", "feed_url", feedURL, "count", len(feed.Items))

	if len(feed.Items) == 0 {
		return nil, ErrNoPosts
	}

	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	posts := make([]Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, c.toPost(item))
	}
	return posts, nil
}

func (c *Client) toPost(item *gofeed.Item) Post {
	post := Post{
		Title:       item.Title,
		Link:        item.Link,
		Description: c.plainText(item.Description),
		Published:   item.Published,
		Image:       ExtractLeadImage(item.Content),
		Categories:  []string{},
	}
	if item.PublishedParsed != nil {
		post.PublishedAt = *item.PublishedParsed
	}
	if len(item.Categories) > 0 {
		post.Categories = append(post.Categories, item.Categories...)
	}
	return post
}

// plainText drops any markup a feed may carry in its description, decodes
// the entities bluemonday leaves behind and trims surrounding whitespace.
func (c *Client) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.strict.Sanitize(s)))
}
