package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><head>
<title>Fallback</title>
<meta property="og:title" content="Go Proverbs">
<meta name="author" content="Rob Pike">
<meta property="article:published_time" content="2015-11-18T09:00:00Z">
<meta property="og:site_name" content="Go Blog">
</head><body></body></html>`

func resetFormatFlags(t *testing.T) {
	t.Helper()
	reset := func() { flagPDF, flagMarkdown, flagJSON, flagHTML = false, false, false, false }
	reset()
	t.Cleanup(reset)
}

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFormatFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		require.NoError(t, citeCmd.Flags().Set("output_dir", ""))
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func articleServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articleHTML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestValidateFlags(t *testing.T) {
	resetFormatFlags(t)
	assert.NoError(t, validateFlags())

	flagJSON = true
	assert.NoError(t, validateFlags())

	flagPDF = true
	err := validateFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one output format")
}

func TestSelectRenderer(t *testing.T) {
	tests := []struct {
		name string
		set  *bool
		ext  string
	}{
		{"default text", nil, ".txt"},
		{"markdown", &flagMarkdown, ".md"},
		{"json", &flagJSON, ".json"},
		{"pdf", &flagPDF, ".pdf"},
		{"html", &flagHTML, ".html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFormatFlags(t)
			if tt.set != nil {
				*tt.set = true
			}
			r, err := selectRenderer()
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}
}

func TestCite_PrintsCitation(t *testing.T) {
	srv := articleServer(t)

	out, err := run(t, "cite", srv.URL+"/proverbs", "--log_level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Rob Pike. Go Proverbs. – Go Blog, 2015. – [electronic resource].")
	assert.Contains(t, out, "URL: "+srv.URL+"/proverbs (Accessed: ")
}

func TestCite_JSON(t *testing.T) {
	srv := articleServer(t)

	out, err := run(t, "cite", srv.URL, "--json", "--log_level", "error")
	require.NoError(t, err)

	var got struct {
		Metadata map[string]any `json:"metadata"`
		Citation string         `json:"citation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Go Proverbs", got.Metadata["title"])
	assert.Equal(t, "2015-11-18", got.Metadata["pub_date"])
	assert.Contains(t, got.Citation, "Rob Pike. Go Proverbs.")
}

func TestCite_WritesFile(t *testing.T) {
	srv := articleServer(t)
	dir := t.TempDir()

	out, err := run(t, "cite", srv.URL+"/proverbs", "--markdown", "--output_dir", dir, "--log_level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Written:")

	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Go Proverbs")
}

func TestCite_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing url", []string{"cite"}, "accepts 1 arg"},
		{"invalid url", []string{"cite", "example.com"}, "invalid URL"},
		{"two formats", []string{"cite", srv.URL, "--json", "--pdf"}, "only one output format"},
		{"not found", []string{"cite", srv.URL, "--log_level", "error"}, "404"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, out)
		})
	}
}
