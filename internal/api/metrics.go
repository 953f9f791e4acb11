package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decide_evaluations_total",
		Help: "Scoring requests by input source and outcome.",
	}, []string{"source", "outcome"})

	evaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "decide_evaluation_duration_seconds",
		Help:    "Time spent validating, scoring and ranking one request.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"source"})

	evaluationAlternatives = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "decide_evaluation_alternatives",
		Help:    "Number of alternatives ranked per successful evaluation.",
		Buckets: prometheus.LinearBuckets(2, 4, 8),
	})

	workbooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decide_workbooks_total",
		Help: "Uploaded workbooks by outcome.",
	}, []string{"outcome"})
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)
