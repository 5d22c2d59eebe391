package web

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gaurav-prasanna/webcite/core"
	"github.com/gaurav-prasanna/webcite/core/cite"
)

// Citation outcomes, used as the "outcome" metric label.
const (
	outcomeOK          = "ok"
	outcomeEmptyURL    = "empty_url"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

var (
	citationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcite_citations_total",
			Help: "Total number of citation requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // endpoint: form, api
	)

	citationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webcite_citation_duration_seconds",
			Help:    "Time to fetch, extract and format one citation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint"},
	)
)

func classify(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, cite.ErrEmptyURL):
		return outcomeEmptyURL
	case errors.Is(err, core.ErrMetadataUnavailable):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}
