package bootstrap

import (
	"log/slog"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/eventlog"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
}

// RegisterEventHandlers subscribes the metrics collector and the event logger
// to every growth event type.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.EventLogService.Subscribe(deps.EventBus)
	slog.Info(LogMsgEventLoggerInitialized)
}
