// Package core defines the pipeline interfaces for webcite.
// Each stage of the pipeline is a clean, testable interface:
// fetch → extract → format → render.
package core

import (
	"context"
	"errors"
)

// ErrMetadataUnavailable is the single failure signal of the pipeline.
// Fetch failures of any kind are reported wrapped in it.
var ErrMetadataUnavailable = errors.New("metadata extraction failed")

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Metadata is the bibliographic record extracted from one page.
// Every field is populated once extraction succeeds.
type Metadata struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	PubDate    string `json:"pub_date"` // YYYY-MM-DD when present, "" when absent
	SiteName   string `json:"site_name"`
	URL        string `json:"url"`
	AccessDate string `json:"access_date"` // DD.MM.YYYY
}

// HasPubDate reports whether a publication date was found.
func (m Metadata) HasPubDate() bool {
	return m.PubDate != ""
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor turns raw HTML into a Metadata record. It never fails:
// missing fields resolve to sentinel values.
type Extractor interface {
	Extract(html string, pageURL string) Metadata
}

// Formatter maps a Metadata record to a citation string.
type Formatter interface {
	Format(meta Metadata) string
}

// Renderer converts a citation (and its metadata) into a final output format.
type Renderer interface {
	Render(citation string, meta Metadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
