// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET per page and decodes the body to UTF-8.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/gaurav-prasanna/webcite/core"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "webcite/1.0 (https://github.com/gaurav-prasanna/webcite)"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Options tunes an HTTPFetcher. Zero values fall back to the package defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// MaxBodyBytes caps the response body when positive; zero reads it whole.
	MaxBodyBytes int64
	Logger       *zap.Logger
}

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *zap.Logger
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts Options) *HTTPFetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithClient(&http.Client{Timeout: timeout}, opts)
}

// NewWithClient creates an HTTPFetcher around an existing client.
// opts.Timeout is ignored; the client's own timeout applies.
func NewWithClient(c *http.Client, opts Options) *HTTPFetcher {
	f := &HTTPFetcher{
		client:       c,
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       opts.Logger,
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// Fetch retrieves the HTML content of the given URL.
// Redirects are followed; anything but a 2xx final response is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	raw, err := readLimited(resp.Body, f.maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	body, err := decodeUTF8(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	f.logger.Debug("fetched page",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       body,
	}, nil
}

// readLimited reads at most limit bytes and fails if the body is larger.
// A limit of zero or less reads everything.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return b, nil
}

// decodeUTF8 converts the body from its declared or sniffed charset.
// A body that is valid UTF-8 is kept as is unless a header or BOM says otherwise.
func decodeUTF8(raw []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(raw)) {
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("charset %s: %w", name, err)
	}
	return string(out), nil
}
