package page

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

const (
	// VideoIDAttr tags elements whose text is a video title to resolve.
	VideoIDAttr = "data-video-id"
	// DefaultFallbackTitle is written when a title cannot be resolved.
	DefaultFallbackTitle = "Prezentacja"
)

// TitleFetcher looks up the title of a video.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, videoID string) (string, error)
}

// TitleResult counts the outcome of one Resolve call.
type TitleResult struct {
	Resolved int
	Fallback int
	Skipped  int
}

// TitleOption configures the TitleResolver.
type TitleOption func(*TitleResolver)

// WithFallbackTitle sets the text written when a lookup fails or returns no title.
func WithFallbackTitle(title string) TitleOption {
	return func(r *TitleResolver) {
		r.fallback = title
	}
}

// WithConcurrency sets how many lookups may be in flight. Values below 2
// keep lookups strictly sequential.
func WithConcurrency(n int) TitleOption {
	return func(r *TitleResolver) {
		r.concurrency = n
	}
}

// WithTitleLogger sets the logger used for lookup warnings.
func WithTitleLogger(logger *slog.Logger) TitleOption {
	return func(r *TitleResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// TitleResolver replaces the text of every tagged element with its video title.
type TitleResolver struct {
	fetcher     TitleFetcher
	fallback    string
	concurrency int
	logger      *slog.Logger
}

// NewTitleResolver creates a resolver backed by fetcher.
func NewTitleResolver(fetcher TitleFetcher, opts ...TitleOption) *TitleResolver {
	r := &TitleResolver{
		fetcher:     fetcher,
		fallback:    DefaultFallbackTitle,
		concurrency: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type titleTarget struct {
	sel     *goquery.Selection
	videoID string
	title   string
	err     error
}

// Resolve issues one lookup per element carrying a non-empty video id and
// writes the title, or the fallback text, into it. Elements with an empty id
// are left untouched. One element's failure never affects another.
func (r *TitleResolver) Resolve(ctx context.Context, doc *Document) TitleResult {
	var result TitleResult
	var targets []*titleTarget

	doc.Find("[" + VideoIDAttr + "]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr(VideoIDAttr)
		if id == "" {
			result.Skipped++
			return
		}
		targets = append(targets, &titleTarget{sel: s, videoID: id})
	})

	if r.concurrency > 1 {
		r.lookupConcurrently(ctx, targets)
	} else {
		for _, t := range targets {
			t.title, t.err = r.fetcher.FetchTitle(ctx, t.videoID)
		}
	}

	// document writes stay on the calling goroutine
	for _, t := range targets {
		if r.apply(t) {
			result.Resolved++
		} else {
			result.Fallback++
		}
	}
	return result
}

func (r *TitleResolver) lookupConcurrently(ctx context.Context, targets []*titleTarget) {
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			t.title, t.err = r.fetcher.FetchTitle(ctx, t.videoID)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *TitleResolver) apply(t *titleTarget) bool {
	switch {
	case t.err != nil:
		r.logger.Warn("failed to load video title", "video_id", t.videoID, "error", t.err)
		t.sel.SetText(r.fallback)
		return false
	case t.title == "":
		t.sel.SetText(r.fallback)
		return false
	default:
		t.sel.SetText(t.title)
		return true
	}
}
