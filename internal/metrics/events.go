package metrics

import (
	"context"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all growth events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotMap, "type", evt.Type)
		return nil
	}

	switch evt.Type {
	case domain.EventTypePodHarvested:
		Harvests.Inc()
		if w, ok := payload[PayloadFieldWeight].(float64); ok {
			HarvestedWeight.Add(w)
		}

	case domain.EventTypeRarityRewarded:
		if r, ok := payload[PayloadFieldTerpReward].(float64); ok {
			TerpRewarded.Add(r)
		}

	case domain.EventTypeBiomassProcessed:
		if w, ok := payload[PayloadFieldWeight].(float64); ok {
			BiomassRedeemed.Add(w)
		}

	case domain.EventTypeSeedMinted:
		SeedsMinted.Inc()

	case domain.EventTypeSeedBred:
		SeedsBred.Inc()

	case domain.EventTypeSlotUnlocked:
		SlotsUnlocked.Inc()

	case domain.EventTypeStageAdvanced:
		if s, ok := payload[PayloadFieldStage].(float64); ok {
			StageAdvances.WithLabelValues(domain.Stage(s).String()).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordGlobal copies the global record counters into the state gauges
func RecordGlobal(g *domain.GlobalConfig) {
	if g == nil {
		return
	}
	TotalBiomass.Set(float64(g.TotalBiomass))
	CureVault.Set(float64(g.CureVaultBal))
	GlobalVersion.Set(float64(g.Version))
	SeedCounter.Set(float64(g.SeedCounter))
	BiomassCounter.Set(float64(g.BiomassCounter))
}

// RecordEventHandlerError counts a failed publish of eventType
func RecordEventHandlerError(eventType event.Type) {
	EventHandlerErrors.WithLabelValues(string(eventType)).Inc()
}
