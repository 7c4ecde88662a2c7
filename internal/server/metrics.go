package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts requests by method and result
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "texlab_requests_total",
		Help: "Total language server requests by method and result",
	}, []string{"method", "result"})

	// requestDuration tracks request latency
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "texlab_request_duration_seconds",
		Help:    "Request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	}, []string{"method"})

	completionItems = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "texlab_completion_items",
		Help:    "Number of completion items returned per request",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500},
	})

	renameEdits = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "texlab_rename_edits",
		Help:    "Number of text edits produced per rename",
		Buckets: []float64{1, 2, 5, 10, 50, 100},
	})

	openDocuments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "texlab_workspace_documents",
		Help: "Number of documents in the workspace",
	})
)

const (
	resultOK       = "ok"
	resultEmpty    = "empty"
	resultError    = "error"
	resultCanceled = "canceled"
)
