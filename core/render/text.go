// Package render provides output renderers for the webcite pipeline.
// This file implements the plain-text renderer, the default output.
package render

import (
	"github.com/gaurav-prasanna/webcite/core"
)

// TextRenderer writes the citation as a single line.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the citation followed by a newline.
func (r *TextRenderer) Render(citation string, meta core.Metadata) ([]byte, error) {
	return []byte(citation + "\n"), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
