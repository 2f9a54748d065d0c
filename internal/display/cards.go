package display

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/justcloud/landing/internal/blog"
)

const (
	// SummaryLength is the number of characters of a description kept on a card.
	SummaryLength = 150
	// MaxTags is the number of category chips shown per card.
	MaxTags = 3

	DefaultPlaceholderImage = "img/logo.png"
	DefaultReadMoreLabel    = "Czytaj więcej"
)

var cardTemplate = template.Must(template.New("card").Parse(`
<article class="blog-post-card bg-white dark:bg-gray-900 rounded-xl shadow-lg overflow-hidden flex flex-col border border-transparent dark:border-gray-800">
    <div class="relative w-full h-48 bg-gray-200 dark:bg-gray-800 overflow-hidden">
        <img src="{{.Image}}" alt="{{.Title}}" class="absolute inset-0 w-full h-full object-cover" loading="lazy" onerror="this.src={{.Placeholder}}">
    </div>
    <div class="p-6 flex-1 flex flex-col">
        <time class="text-sm text-gray-500 dark:text-gray-400 mb-2"{{if .DateTime}} datetime="{{.DateTime}}"{{end}}>{{.Date}}</time>
        <h3 class="font-space-mono text-xl font-bold mb-3 text-gray-900 dark:text-white line-clamp-2">
            <a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>
        </h3>
        <p class="text-gray-600 dark:text-gray-300 mb-4 flex-1 line-clamp-3">{{.Summary}}</p>
        {{- if .Tags}}
        <div class="flex flex-wrap gap-2 mb-4">
            {{- range .Tags}}
            <span class="tag-chip px-3 py-1 text-xs font-medium rounded-full">{{.}}</span>
            {{- end}}
        </div>
        {{- end}}
        <a href="{{.Link}}" target="_blank" rel="noopener noreferrer" class="read-more inline-flex items-center font-semibold">{{.ReadMore}}</a>
    </div>
</article>
`))

type cardView struct {
	Title       string
	Link        string
	Image       string
	Placeholder string
	Date        string
	DateTime    string
	Summary     string
	Tags        []string
	ReadMore    string
}

// CardOption configures the CardFormatter.
type CardOption func(*CardFormatter)

// WithLocale sets the locale used for card dates.
func WithLocale(locale string) CardOption {
	return func(f *CardFormatter) {
		f.dates = NewDateFormatter(locale)
	}
}

// WithPlaceholderImage sets the image shown when a post has none or it fails to load.
func WithPlaceholderImage(src string) CardOption {
	return func(f *CardFormatter) {
		f.placeholder = src
	}
}

// WithReadMoreLabel sets the text of the link at the bottom of each card.
func WithReadMoreLabel(label string) CardOption {
	return func(f *CardFormatter) {
		f.readMore = label
	}
}

// CardFormatter renders blog posts as self-contained HTML cards.
type CardFormatter struct {
	dates       *DateFormatter
	placeholder string
	readMore    string
}

// NewCardFormatter creates a card formatter with the landing page defaults.
func NewCardFormatter(opts ...CardOption) *CardFormatter {
	f := &CardFormatter{
		dates:       NewDateFormatter(DefaultLocale),
		placeholder: DefaultPlaceholderImage,
		readMore:    DefaultReadMoreLabel,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatCard renders a single post.
func (f *CardFormatter) FormatCard(post blog.Post) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, f.view(post)); err != nil {
		return "", fmt.Errorf("failed to render card for %q: %w", post.Link, err)
	}
	return buf.String(), nil
}

// FormatCards renders posts in the given order. Either every card renders or
// an error is returned.
func (f *CardFormatter) FormatCards(posts []blog.Post) (string, error) {
	var sb strings.Builder
	for _, post := range posts {
		card, err := f.FormatCard(post)
		if err != nil {
			return "", err
		}
		sb.WriteString(card)
	}
	return sb.String(), nil
}

func (f *CardFormatter) view(post blog.Post) cardView {
	image := post.Image
	if image == "" {
		image = f.placeholder
	}

	date := f.dates.Format(post.PublishedAt)
	dateTime := ""
	if date == "" {
		date = post.Published
	} else {
		dateTime = post.PublishedAt.Format("2006-01-02")
	}

	return cardView{
		Title:       post.Title,
		Link:        post.Link,
		Image:       image,
		Placeholder: f.placeholder,
		Date:        date,
		DateTime:    dateTime,
		Summary:     TruncateSummary(post.Description),
		Tags:        LimitTags(post.Categories),
		ReadMore:    f.readMore,
	}
}

// TruncateSummary keeps the first SummaryLength characters of s and appends
// "..." unconditionally, so short summaries also end with an ellipsis.
// TODO: append the ellipsis only when text was actually cut once the page copy is reviewed.
func TruncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) > SummaryLength {
		runes = runes[:SummaryLength]
	}
	return string(runes) + "..."
}

// LimitTags returns at most MaxTags tags, preserving order.
func LimitTags(tags []string) []string {
	if len(tags) > MaxTags {
		return tags[:MaxTags]
	}
	return tags
}
