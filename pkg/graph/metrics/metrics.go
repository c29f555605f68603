// Package metrics exposes prometheus instrumentation for the import
// pipeline and the graph write layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Graph write metrics
	NodesMerged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_nodes_merged_total",
			Help: "Node merge statements issued, by node label",
		},
		[]string{"label"},
	)

	RelationshipsMerged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_relationships_merged_total",
			Help: "Relationship merge statements issued, by relationship type",
		},
		[]string{"type"},
	)

	// Pipeline metrics
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "import_run_duration_seconds",
			Help: "Time spent on one full import run",
		},
		[]string{"status"},
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_runs_total",
			Help: "Import runs executed, by outcome",
		},
		[]string{"status"},
	)

	StepErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_step_errors_total",
			Help: "Sub-importer failures, by step name",
		},
		[]string{"step"},
	)
)
