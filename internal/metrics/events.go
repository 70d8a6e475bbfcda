package metrics

import (
	"context"

	"github.com/osse101/LiveLikeSpawns_Go/internal/event"
	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all host events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.GameStarted} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent counts published events
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// InstrumentHandler counts handler failures of an event handler
func InstrumentHandler(handler event.Handler) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		err := handler(ctx, evt)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		}
		return err
	}
}
