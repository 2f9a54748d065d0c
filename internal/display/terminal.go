// Package display renders blog posts for the landing page (HTML cards) and
// for the terminal.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/justcloud/landing/internal/blog"
)

const separator = " • "

// TerminalFormatter formats blog posts for terminal display.
type TerminalFormatter struct {
	now func() time.Time
}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{now: time.Now}
}

// FormatPost formats a single post for display.
func (f *TerminalFormatter) FormatPost(post blog.Post) string {
	var lines []string

	lines = append(lines, post.Title)

	meta := "  " + f.FormatTimestamp(post.PublishedAt)
	if tags := LimitTags(post.Categories); len(tags) > 0 {
		meta += separator + strings.Join(tags, ", ")
	}
	lines = append(lines, meta)

	if post.Description != "" {
		lines = append(lines, "  "+f.TruncateText(post.Description, 80))
	}

	if post.Link != "" {
		lines = append(lines, "  "+post.Link)
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatPosts formats multiple posts for display.
func (f *TerminalFormatter) FormatPosts(posts []blog.Post) string {
	if len(posts) == 0 {
		return "No posts to display.\n"
	}

	var formatted []string
	for _, post := range posts {
		formatted = append(formatted, f.FormatPost(post))
	}

	return strings.Join(formatted, "\n---\n\n")
}

// FormatTimestamp formats a timestamp as relative time.
func (f *TerminalFormatter) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}

	diff := f.now().Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// pluralize returns "N unit ago" or "N units ago" based on count.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText truncates text to maxLen runes, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}
