// Package cite wires the pipeline stages together:
// fetch → extract → format.
//
// Callers get either a complete Result or an error wrapping
// core.ErrMetadataUnavailable; there is no partial result.
package cite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/webcite/core"
)

// ErrEmptyURL is returned when no URL was given. A URL of only spaces is
// not empty; it is fetched and fails like any other bad URL.
var ErrEmptyURL = errors.New("url is required")

// Result is a successful run of the pipeline.
type Result struct {
	Metadata core.Metadata
	Citation string
}

// Pipeline turns a URL into a citation. It holds no per-request state and
// is safe for concurrent use when its stages are.
type Pipeline struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	formatter core.Formatter
	logger    *zap.Logger
}

// New creates a Pipeline. A nil logger disables logging.
func New(fetcher core.Fetcher, extractor core.Extractor, formatter core.Formatter, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		formatter: formatter,
		logger:    logger,
	}
}

// Run fetches rawURL, extracts its metadata and formats the citation.
// The extractor is never invoked when the fetch fails.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (Result, error) {
	if rawURL == "" {
		return Result{}, ErrEmptyURL
	}

	start := time.Now()
	page, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		p.logger.Warn("page fetch failed", zap.String("url", rawURL), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", core.ErrMetadataUnavailable, err)
	}

	meta := p.extractor.Extract(page.HTML, rawURL)
	citation := p.formatter.Format(meta)

	p.logger.Info("citation built",
		zap.String("url", rawURL),
		zap.String("title", meta.Title),
		zap.String("author", meta.Author),
		zap.Bool("has_pub_date", meta.HasPubDate()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{Metadata: meta, Citation: citation}, nil
}
