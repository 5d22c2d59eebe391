package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDSelector matches embedded structured-data blocks.
const jsonLDSelector = `script[type="application/ld+json"]`

// articleTypes are the schema.org @type values treated as articles.
var articleTypes = map[string]bool{
	"Article":     true,
	"NewsArticle": true,
	"BlogPosting": true,
}

// ResolveAuthor scans every JSON-LD block in document order for an
// article object and returns its author name. Blocks that are not valid
// JSON are skipped. The first non-empty author wins; ok is false when no
// block yields one.
func ResolveAuthor(doc *goquery.Document) (author string, ok bool) {
	doc.Find(jsonLDSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		author = authorFromBlock(s.Text())
		return author == ""
	})
	return author, author != ""
}

// authorFromBlock decodes one block. A block holds either a single object
// or a list of objects; list elements are checked in order.
func authorFromBlock(raw string) string {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return ""
	}

	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if name := authorFromArticle(item); name != "" {
				return name
			}
		}
	case map[string]any:
		return authorFromArticle(v)
	}
	return ""
}

// authorFromArticle returns the author of an article-like object.
// The author field may be a string, a Person-like object with a name,
// or a list of such objects whose names are joined with ", ".
func authorFromArticle(item any) string {
	obj, ok := item.(map[string]any)
	if !ok {
		return ""
	}
	typ, _ := obj["@type"].(string)
	if !articleTypes[typ] {
		return ""
	}

	switch author := obj["author"].(type) {
	case string:
		return author
	case map[string]any:
		return nameOf(author)
	case []any:
		var names []string
		for _, a := range author {
			person, ok := a.(map[string]any)
			if !ok {
				continue
			}
			if name := nameOf(person); name != "" {
				names = append(names, name)
			}
		}
		// No surviving names joins to "", which callers treat as absent.
		return strings.Join(names, ", ")
	}
	return ""
}

// nameOf returns the string name field of obj, or "".
func nameOf(obj map[string]any) string {
	name, _ := obj["name"].(string)
	return name
}
