package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com", "example_com"},
		{"https://example.com/", "example_com"},
		{"https://example.com/docs/intro", "example_com_docs_intro"},
		{"https://example.com:8080/a-b/c.html", "example_com_8080_a_b_c_html"},
		{"https://example.com/a//b/?q=1#frag", "example_com_a_b"},
		{"https://пример.рф/статья", "citation"},
		{"not a url", "not_a_url"},
		{"", "citation"},
		{"///", "citation"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromURL(tt.url))
		})
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("https://example.com/posts/1", []byte("citation\n"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_posts_1.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "citation\n", string(data))
}

func TestNew_DefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	w, err := New("")
	require.NoError(t, err)
	assert.Equal(t, wd, w.OutputDir)
}
