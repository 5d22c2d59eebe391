package render

import (
	"fmt"
	"sort"

	"github.com/gaurav-prasanna/webcite/core"
)

var renderers = map[string]func() core.Renderer{
	"text":     func() core.Renderer { return NewTextRenderer() },
	"html":     func() core.Renderer { return NewHTMLRenderer() },
	"markdown": func() core.Renderer { return NewMarkdownRenderer() },
	"json":     func() core.Renderer { return NewJSONRenderer() },
	"pdf":      func() core.Renderer { return NewPDFRenderer() },
}

// ByName returns the renderer registered under name.
func ByName(name string) (core.Renderer, error) {
	newRenderer, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want one of %v)", name, Names())
	}
	return newRenderer(), nil
}

// Names lists the registered renderer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
