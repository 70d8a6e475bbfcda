package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Adjustment metric names
const (
	MetricNameAdjustmentCycles     = "spawn_adjustment_cycles_total"
	MetricNameAdjustmentMultiplier = "spawn_adjustment_multiplier"
	MetricNameProgressionFactor    = "spawn_progression_factor"
	MetricNameChancesChanged       = "spawn_chances_changed_total"
	MetricNameMetricDefaultsUsed   = "spawn_player_metric_defaults_total"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextAdjustmentCycles     = "Total number of spawn chance adjustment cycles"
	HelpTextAdjustmentMultiplier = "Adjustment multiplier currently applied to boss spawn chances"
	HelpTextProgressionFactor    = "Most recent progression factor per player metric"
	HelpTextChancesChanged       = "Total number of spawn records whose chance changed"
	HelpTextMetricDefaultsUsed   = "Total number of times a configured default replaced an unavailable player metric"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelType     = "type"
	LabelMetric   = "metric"
	LabelLocation = "location"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Event metrics recorded"
)
