package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Adjustment Metrics
var (
	AdjustmentCycles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdjustmentCycles,
			Help: HelpTextAdjustmentCycles,
		},
	)

	AdjustmentMultiplier = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAdjustmentMultiplier,
			Help: HelpTextAdjustmentMultiplier,
		},
	)

	ProgressionFactor = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameProgressionFactor,
			Help: HelpTextProgressionFactor,
		},
		[]string{LabelMetric},
	)

	ChancesChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChancesChanged,
			Help: HelpTextChancesChanged,
		},
		[]string{LabelLocation},
	)

	MetricDefaultsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMetricDefaultsUsed,
			Help: HelpTextMetricDefaultsUsed,
		},
		[]string{LabelMetric},
	)
)

func init() {
	// Neutral until the first cycle runs
	AdjustmentMultiplier.Set(1)
}
