// Package render — PDF renderer.
// Lays out the citation as a one-entry reference list on an A4 page using gofpdf.
// The Go fonts are embedded as UTF-8 TrueType so Cyrillic text and the
// en-dash separators are written as is.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gaurav-prasanna/webcite/core"
)

// pdfFont is the family name the embedded Go fonts are registered under.
const pdfFont = "go"

// PDFRenderer renders the citation as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the citation into PDF bytes.
func (r *PDFRenderer) Render(citation string, meta core.Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := layout(citation, meta).Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// layout builds the document. Font loading errors are held by the
// returned Fpdf and surface from Output.
func layout(citation string, meta core.Metadata) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", gobold.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "I", goitalic.TTF)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator("webcite", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.MultiCell(0, 8, "References", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "", 11)
	pdf.MultiCell(0, 6, "1. "+citation, "", "L", false)
	pdf.Ln(6)

	// Source URL.
	pdf.SetFont(pdfFont, "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+meta.URL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	return pdf
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
