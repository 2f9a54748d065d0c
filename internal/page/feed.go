package page

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/justcloud/landing/internal/blog"
)

const (
	// ContainerID identifies the element that receives the blog cards.
	ContainerID = "blog-posts-container"
	// ErrorPanelID identifies the static panel revealed when the feed fails.
	ErrorPanelID = "blog-error"
	// HiddenClass keeps the error panel invisible until a failure.
	HiddenClass = "hidden"
	// MaxPosts is the number of feed items rendered on the page.
	MaxPosts = 3
)

// PostFetcher retrieves blog posts from a feed.
type PostFetcher interface {
	FetchPosts(ctx context.Context, feedURL string, limit int) ([]blog.Post, error)
}

// CardRenderer turns posts into card markup.
type CardRenderer interface {
	FormatCards(posts []blog.Post) (string, error)
}

// FeedStatus tells what the feed loader did to the page.
type FeedStatus string

const (
	FeedSkipped  FeedStatus = "skipped"
	FeedRendered FeedStatus = "rendered"
	FeedFailed   FeedStatus = "failed"
)

// FeedResult summarises one Load call. Err is informational: the page
// already shows the error panel when it is set.
type FeedResult struct {
	Status FeedStatus
	Cards  int
	Err    error
}

// FeedLoader fills the blog container with cards built from the feed.
type FeedLoader struct {
	fetcher PostFetcher
	cards   CardRenderer
	feedURL string
	logger  *slog.Logger
}

// NewFeedLoader creates a loader reading feedURL through fetcher.
func NewFeedLoader(fetcher PostFetcher, cards CardRenderer, feedURL string, logger *slog.Logger) *FeedLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedLoader{
		fetcher: fetcher,
		cards:   cards,
		feedURL: feedURL,
		logger:  logger,
	}
}

// Load fetches the feed once and replaces the container content with up to
// MaxPosts cards. On any failure the container is emptied and the error
// panel is revealed. Without a container the page is left untouched.
func (l *FeedLoader) Load(ctx context.Context, doc *Document) FeedResult {
	container := doc.Find("#" + ContainerID).First()
	if container.Length() == 0 {
		l.logger.Debug("blog container not found, skipping feed", "container_id", ContainerID)
		return FeedResult{Status: FeedSkipped}
	}

	posts, err := l.fetcher.FetchPosts(ctx, l.feedURL, MaxPosts)
	if err != nil {
		return l.fail(doc, container, err)
	}
	if len(posts) == 0 {
		return l.fail(doc, container, blog.ErrNoPosts)
	}
	if len(posts) > MaxPosts {
		posts = posts[:MaxPosts]
	}

	markup, err := l.cards.FormatCards(posts)
	if err != nil {
		return l.fail(doc, container, err)
	}

	container.SetHtml(markup)
	l.logger.Info("blog posts rendered", "feed_url", l.feedURL, "count", len(posts))
	return FeedResult{Status: FeedRendered, Cards: len(posts)}
}

func (l *FeedLoader) fail(doc *Document, container *goquery.Selection, err error) FeedResult {
	container.Empty()
	doc.Find("#" + ErrorPanelID).RemoveClass(HiddenClass)
	l.logger.Error("error loading blog posts", "feed_url", l.feedURL, "error", err)
	return FeedResult{Status: FeedFailed, Err: err}
}
