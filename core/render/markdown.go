// Package render — Markdown renderer.
// Converts the HTML citation fragment into Markdown, so the cited URL becomes
// a Markdown link and special characters are escaped by the converter.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/webcite/core"
)

// MarkdownRenderer writes the citation as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the citation fragment to Markdown.
func (r *MarkdownRenderer) Render(citation string, meta core.Metadata) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(Fragment(citation, meta.URL))
	if err != nil {
		return nil, fmt.Errorf("converting citation to markdown: %w", err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
