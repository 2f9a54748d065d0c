package page

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed landing page whose widget mount points can be rewritten.
type Document struct {
	doc *goquery.Document
}

// Load parses an HTML page.
func Load(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// LoadFile parses the HTML page stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Render writes the whole document, doctype included.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.doc.Nodes[0]); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Find exposes a selection of the document, mainly for callers inspecting the result.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}
