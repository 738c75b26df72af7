package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCommandsTotal,
			Help:      HelpTextCommandsTotal,
		},
		[]string{LabelVerb, LabelResult},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameCommandDuration,
			Help:      HelpTextCommandDuration,
			Buckets:   CommandLatencyBuckets,
		},
		[]string{LabelVerb},
	)
)

// Gameplay Metrics
var (
	MovesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameMovesTotal,
			Help:      HelpTextMovesTotal,
		},
		[]string{LabelDirection},
	)

	ItemTransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemTransfersTotal,
			Help:      HelpTextItemTransfersTotal,
		},
		[]string{LabelAction},
	)

	PuzzleEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNamePuzzleEventsTotal,
			Help:      HelpTextPuzzleEventsTotal,
		},
		[]string{LabelPuzzle, LabelResult},
	)

	SaveOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSaveOpsTotal,
			Help:      HelpTextSaveOpsTotal,
		},
		[]string{LabelOperation, LabelResult},
	)
)

// WriteTextfile writes every registered metric in the text exposition format,
// for pickup by a node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
