// Package youtube resolves video titles through the public YouTube oEmbed
// endpoint.
//
// This package enables landing to:
// - Build the watch-page URL for a video identifier
// - Fetch the oEmbed document for it without any API key
// - Report lookup failures as errors wrapping ErrLookup
package youtube

// Embed is the subset of the oEmbed response the landing page uses.
// Every field is optional in practice; a missing title decodes to "".
type Embed struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ProviderName string `json:"provider_name"`
}
