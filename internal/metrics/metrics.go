package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetLoads counts dataset load attempts by outcome (ok / error).
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diveshop_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"result"},
	)

	// PipelineApplies counts full filter/sort pipeline recomputations.
	PipelineApplies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diveshop_pipeline_applies_total",
			Help: "Total number of filter/sort pipeline recomputations",
		},
	)

	// CacheLookups counts pipeline memoization lookups (hit / miss).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diveshop_pipeline_cache_lookups_total",
			Help: "Total number of pipeline result cache lookups",
		},
		[]string{"result"},
	)

	// FeedbackSubmissions counts feedback form submissions by outcome.
	FeedbackSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diveshop_feedback_submissions_total",
			Help: "Total number of feedback submissions",
		},
		[]string{"result"},
	)
)
