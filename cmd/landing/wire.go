package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/justcloud/landing/internal/blog"
	"github.com/justcloud/landing/internal/config"
	"github.com/justcloud/landing/internal/display"
	"github.com/justcloud/landing/internal/logger"
	"github.com/justcloud/landing/internal/page"
	"github.com/justcloud/landing/internal/youtube"
)

// rootOptions carries the persistent flags and what setup derives from them.
type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}

	l, err := logger.Init(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("invalid logging settings: %w", err)
	}

	o.cfg = cfg
	o.logger = l
	return nil
}

func (o *rootOptions) httpClient() *http.Client {
	return &http.Client{Timeout: o.cfg.HTTPTimeout}
}

func (o *rootOptions) blogClient() *blog.Client {
	return blog.NewClient(
		blog.WithHTTPClient(o.httpClient()),
		blog.WithLogger(o.logger),
	)
}

func (o *rootOptions) youtubeClient() *youtube.Client {
	return youtube.NewClient(
		youtube.WithHTTPClient(o.httpClient()),
		youtube.WithEndpoint(o.cfg.OEmbedURL),
		youtube.WithRateLimit(o.cfg.TitleRPS),
	)
}

func (o *rootOptions) cardFormatter() *display.CardFormatter {
	return display.NewCardFormatter(
		display.WithLocale(o.cfg.Locale),
		display.WithPlaceholderImage(o.cfg.PlaceholderImage),
		display.WithReadMoreLabel(o.cfg.ReadMoreLabel),
	)
}

func (o *rootOptions) renderer() *page.Renderer {
	feed := page.NewFeedLoader(o.blogClient(), o.cardFormatter(), o.cfg.FeedURL, o.logger)
	titles := page.NewTitleResolver(o.youtubeClient(),
		page.WithFallbackTitle(o.cfg.FallbackTitle),
		page.WithConcurrency(o.cfg.TitleConcurrency),
		page.WithTitleLogger(o.logger),
	)
	return page.NewRenderer(feed, titles, o.logger)
}
