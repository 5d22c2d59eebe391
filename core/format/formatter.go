// Package format implements the Formatter interface.
// It renders a Metadata record into the single supported citation template
// for an electronic resource.
package format

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/webcite/core"
)

// NoDate is the year placeholder used when no publication date is known.
const NoDate = "n.d."

// citationTemplate must be kept byte-for-byte: the separators are en-dashes (U+2013).
const citationTemplate = "%s. %s. – %s, %s. – [electronic resource]. – URL: %s (Accessed: %s)."

// CitationFormatter formats electronic-resource citations.
type CitationFormatter struct{}

// New creates a CitationFormatter.
func New() *CitationFormatter {
	return &CitationFormatter{}
}

// Format substitutes the record's fields verbatim into the template.
func (f *CitationFormatter) Format(meta core.Metadata) string {
	return fmt.Sprintf(citationTemplate,
		meta.Author,
		meta.Title,
		meta.SiteName,
		Year(meta.PubDate),
		meta.URL,
		meta.AccessDate,
	)
}

// Year returns the part of pubDate before the first "-", or NoDate when
// pubDate is empty. A date without "-" is returned whole.
func Year(pubDate string) string {
	if pubDate == "" {
		return NoDate
	}
	year, _, _ := strings.Cut(pubDate, "-")
	return year
}
