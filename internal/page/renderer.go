// Package page runs the landing page widgets against an HTML document.
//
// This package enables landing to:
// - Fill the blog gallery mount point from the RSS feed, or reveal the error panel
// - Replace the text of every [data-video-id] element with its video title
// - Load and write whole pages so they can be prerendered or served
package page

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Report describes what one Render call did to a page.
type Report struct {
	Feed     FeedResult
	Titles   TitleResult
	Duration time.Duration
}

// Renderer runs both widgets once against a page. The widgets share no
// state; a failure in one never affects the other.
type Renderer struct {
	feed   *FeedLoader
	titles *TitleResolver
	logger *slog.Logger
}

// NewRenderer creates a renderer. Either widget may be nil to disable it.
func NewRenderer(feed *FeedLoader, titles *TitleResolver, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{feed: feed, titles: titles, logger: logger}
}

// Render applies the widgets to doc in place.
func (r *Renderer) Render(ctx context.Context, doc *Document) Report {
	start := time.Now()
	var report Report

	if r.feed != nil {
		report.Feed = r.feed.Load(ctx, doc)
	}
	if r.titles != nil {
		report.Titles = r.titles.Resolve(ctx, doc)
	}

	report.Duration = time.Since(start)
	r.logger.Debug("page rendered",
		"feed_status", report.Feed.Status,
		"cards", report.Feed.Cards,
		"titles_resolved", report.Titles.Resolved,
		"titles_fallback", report.Titles.Fallback,
		"duration_ms", report.Duration.Milliseconds())
	return report
}

// RenderTo reads a page from in, applies the widgets and writes the result
// to out. Only page I/O errors are returned; widget failures end up in the
// Report and in the page itself.
func (r *Renderer) RenderTo(ctx context.Context, in io.Reader, out io.Writer) (Report, error) {
	doc, err := Load(in)
	if err != nil {
		return Report{}, err
	}
	report := r.Render(ctx, doc)
	if err := doc.Render(out); err != nil {
		return report, err
	}
	return report, nil
}
