// Package render — HTML renderer.
// Wraps the escaped citation in a paragraph and turns the cited URL into a link.
// The same fragment feeds the Markdown renderer and the web form.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/webcite/core"
)

// HTMLRenderer produces a standalone HTML document holding the citation.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render builds a minimal UTF-8 HTML page around the citation fragment.
func (r *HTMLRenderer) Render(citation string, meta core.Metadata) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(meta.Title))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(Fragment(citation, meta.URL))
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// Fragment returns the citation as an escaped <p class="citation"> element.
// The last "URL: <url>" occurrence becomes an anchor.
func Fragment(citation, url string) string {
	escaped := html.EscapeString(citation)
	if url != "" {
		eu := html.EscapeString(url)
		needle := "URL: " + eu
		if i := strings.LastIndex(escaped, needle); i >= 0 {
			link := fmt.Sprintf(`URL: <a href="%s">%s</a>`, eu, eu)
			escaped = escaped[:i] + link + escaped[i+len(needle):]
		}
	}
	return `<p class="citation">` + escaped + "</p>\n"
}
