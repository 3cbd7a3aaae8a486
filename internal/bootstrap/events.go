package bootstrap

import (
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/metrics"
	"github.com/osse101/CaseForge_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and the live feed hub. The
// hub is started; stop it during shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub
}

// RegisterEventHandlers subscribes everything that reacts to ledger events:
// - Metrics collector (business counters per event type)
// - Live feed subscriber (public drop and win announcements)
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgLiveFeedRegistered)
}
