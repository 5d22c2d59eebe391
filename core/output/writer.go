// Package output saves rendered citations to disk.
// Files are named after the cited URL: https://example.com/docs/intro
// becomes example_com_docs_intro plus the renderer's extension.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when a URL yields no usable characters.
const fallbackName = "citation"

// Writer saves files into one directory.
type Writer struct {
	OutputDir string
}

// New returns a Writer for dir, creating it if needed. An empty dir means
// the current working directory.
func New(dir string) (*Writer, error) {
	abs, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return nil, fmt.Errorf("resolving output directory %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: abs}, nil
}

// Write saves data under the name derived from rawURL and returns the path.
// An existing file of the same name is replaced.
func (w *Writer) Write(rawURL string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FilenameFromURL(rawURL)+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FilenameFromURL flattens the host and path of rawURL into one name made
// of ASCII letters, digits and underscores. Query and fragment are dropped.
// Strings that do not parse as URLs with a host are flattened whole.
func FilenameFromURL(rawURL string) string {
	source := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		source = u.Host + "/" + u.Path
	}

	words := strings.FieldsFunc(source, func(r rune) bool { return !isFilenameRune(r) })
	if len(words) == 0 {
		return fallbackName
	}
	return strings.Join(words, "_")
}

func isFilenameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
