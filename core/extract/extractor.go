// Package extract implements the Extractor interface.
// It builds a bibliographic Metadata record from a page by trying, per field,
// an ordered chain of resolvers:
//
//	title:     og:title → <title> → "unknown title"
//	author:    meta author → JSON-LD article author → "unknown author"
//	pub date:  article:published_time (first 10 characters) → none
//	site name: og:site_name → URL host
package extract

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/webcite/core"
)

// Sentinel values used when a field cannot be found.
const (
	UnknownTitle  = "unknown title"
	UnknownAuthor = "unknown author"
)

// AccessDateLayout formats the access date as DD.MM.YYYY.
const AccessDateLayout = "02.01.2006"

// pubDateLen is the length of an ISO-8601 calendar date (YYYY-MM-DD).
const pubDateLen = 10

// page is the input every resolver sees.
type page struct {
	doc *goquery.Document
	url string
}

// resolver returns a candidate value for one field, or "" when it has none.
type resolver func(p page) string

var (
	titleChain    = []resolver{ogTitle, documentTitle}
	authorChain   = []resolver{metaAuthor, jsonLDAuthor}
	pubDateChain  = []resolver{publishedTime}
	siteNameChain = []resolver{ogSiteName, urlHost}
)

// HTMLExtractor extracts citation metadata from HTML.
type HTMLExtractor struct {
	// Now supplies the access date. Defaults to time.Now.
	Now func() time.Time
}

// New creates an HTMLExtractor that stamps records with the current date.
func New() *HTMLExtractor {
	return &HTMLExtractor{Now: time.Now}
}

// Extract parses raw HTML and resolves every Metadata field.
// Malformed markup is tolerated; in the worst case all fields are sentinels.
func (e *HTMLExtractor) Extract(rawHTML string, pageURL string) core.Metadata {
	p := page{doc: parse(rawHTML), url: pageURL}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	return core.Metadata{
		Title:      firstNonEmpty(p, titleChain, UnknownTitle),
		Author:     firstNonEmpty(p, authorChain, UnknownAuthor),
		PubDate:    firstNonEmpty(p, pubDateChain, ""),
		SiteName:   firstNonEmpty(p, siteNameChain, ""),
		URL:        pageURL,
		AccessDate: now().Format(AccessDateLayout),
	}
}

// firstNonEmpty runs the chain in order and returns the first non-empty value.
func firstNonEmpty(p page, chain []resolver, fallback string) string {
	for _, r := range chain {
		if v := r(p); v != "" {
			return v
		}
	}
	return fallback
}

// parse builds a document tree. The HTML5 parser recovers from malformed
// input, so an error only comes from the reader; an empty document is used then.
func parse(rawHTML string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

// metaContent returns the content attribute of the first element matching sel.
// The value is not trimmed; only an empty attribute counts as missing.
func metaContent(doc *goquery.Document, sel string) string {
	content, _ := doc.Find(sel).First().Attr("content")
	return content
}

func ogTitle(p page) string {
	return metaContent(p.doc, `meta[property="og:title"]`)
}

func documentTitle(p page) string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

func metaAuthor(p page) string {
	return metaContent(p.doc, `meta[name="author"]`)
}

func jsonLDAuthor(p page) string {
	author, _ := ResolveAuthor(p.doc)
	return author
}

// publishedTime truncates article:published_time blindly to its first
// ten characters; no format validation is applied.
func publishedTime(p page) string {
	return truncateRunes(metaContent(p.doc, `meta[property="article:published_time"]`), pubDateLen)
}

func ogSiteName(p page) string {
	return metaContent(p.doc, `meta[property="og:site_name"]`)
}

func urlHost(p page) string {
	return NetLoc(p.url)
}

// NetLoc returns the network location of rawURL: optional userinfo, host
// and optional port (e.g. "example.com" or "user@example.com:8080").
// It returns "" when the URL cannot be parsed.
func NetLoc(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if u.User != nil {
		return u.User.String() + "@" + u.Host
	}
	return u.Host
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
