// Package render — JSON renderer.
// Emits the metadata record and the formatted citation as one JSON object.
// An absent publication date is written as null.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/webcite/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// metadataJSON mirrors core.Metadata with a nullable pub_date.
type metadataJSON struct {
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	PubDate    *string `json:"pub_date"`
	SiteName   string  `json:"site_name"`
	URL        string  `json:"url"`
	AccessDate string  `json:"access_date"`
}

// CitationJSON is the document written by JSONRenderer.
type CitationJSON struct {
	Metadata metadataJSON `json:"metadata"`
	Citation string       `json:"citation"`
}

// NewCitationJSON builds the JSON document for a citation.
func NewCitationJSON(citation string, meta core.Metadata) CitationJSON {
	m := metadataJSON{
		Title:      meta.Title,
		Author:     meta.Author,
		SiteName:   meta.SiteName,
		URL:        meta.URL,
		AccessDate: meta.AccessDate,
	}
	if meta.HasPubDate() {
		pd := meta.PubDate
		m.PubDate = &pd
	}
	return CitationJSON{Metadata: m, Citation: citation}
}

// Render marshals the citation document with indentation.
func (r *JSONRenderer) Render(citation string, meta core.Metadata) ([]byte, error) {
	data, err := json.MarshalIndent(NewCitationJSON(citation, meta), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
