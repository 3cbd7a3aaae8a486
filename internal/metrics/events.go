package metrics

import (
	"context"

	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to session events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every ledger event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.CaseOpenedPayloadV1:
		CasesOpened.WithLabelValues(p.CaseID, string(p.Item.Rarity)).Inc()
		MoneySpent.WithLabelValues(SourceCase).Add(p.Price)

	case event.ItemSoldPayloadV1:
		ItemsSold.WithLabelValues(string(p.Item.Rarity)).Inc()
		MoneyEarned.WithLabelValues(SourceSale).Add(p.Item.Value)

	case event.UpgradeResolvedPayloadV1:
		result := "lose"
		if p.Won {
			result = "win"
		}
		UpgradesResolved.WithLabelValues(result).Inc()
		UpgradeChance.Observe(p.Chance)
		if p.Bet > 0 {
			MoneySpent.WithLabelValues(SourceUpgradeBet).Add(p.Bet)
		}

	case event.ContractSignedPayloadV1:
		ContractsSigned.WithLabelValues(string(p.InputRarity)).Inc()

	case event.PromoRedeemedPayloadV1:
		PromoRedemptions.WithLabelValues(p.Code).Inc()
		MoneyEarned.WithLabelValues(SourcePromo).Add(p.Amount)

	case event.DailyBonusPayloadV1:
		DailyBonusClaims.Inc()
		MoneyEarned.WithLabelValues(SourceDailyBonus).Add(p.Amount)

	case event.BalancePayloadV1:
		// resets and clears carry no business counters

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
