package bootstrap

import (
	"log/slog"

	"github.com/osse101/LiveLikeSpawns_Go/internal/event"
	"github.com/osse101/LiveLikeSpawns_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus

	// GameStarted is subscribed when non-nil
	GameStarted event.Handler
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector and, when given, the instrumented game start handler.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.GameStarted != nil {
		deps.EventBus.Subscribe(event.GameStarted, metrics.InstrumentHandler(deps.GameStarted))
		slog.Info(LogMsgGameStartSubscribed)
	}
}
