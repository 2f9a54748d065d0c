// Package blog fetches the landing page's blog RSS feed and turns its items
// into Post records ready for card rendering.
package blog

import "time"

// Post represents one blog entry taken from the syndication feed.
type Post struct {
	Title       string
	Link        string
	Description string
	// Published is the raw pubDate text; PublishedAt is zero when it could not be parsed.
	Published   string
	PublishedAt time.Time
	// Image is the lead image URL, empty when the item embeds no <img>.
	Image      string
	Categories []string
}
