package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a completed session action
type Event struct {
	Version   string    `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type      `json:"type"`
	SessionID string    `json:"session_id"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Session event types
const (
	CaseOpened       Type = "case.opened"
	ItemSold         Type = "item.sold"
	UpgradeResolved  Type = "upgrade.resolved"
	ContractSigned   Type = "contract.signed"
	PromoRedeemed    Type = "promo.redeemed"
	DailyBonusClaim  Type = "bonus.claimed"
	SessionReset     Type = "session.reset"
	InventoryCleared Type = "inventory.cleared"
)

// AllTypes lists every event type the ledger emits
func AllTypes() []Type {
	return []Type{
		CaseOpened, ItemSold, UpgradeResolved, ContractSigned,
		PromoRedeemed, DailyBonusClaim, SessionReset, InventoryCleared,
	}
}

// Typed event payloads for type safety

// CaseOpenedPayloadV1 is the typed payload for case opening events
type CaseOpenedPayloadV1 struct {
	CaseID     string      `json:"case_id"`
	CaseName   string      `json:"case_name"`
	Price      float64     `json:"price"`
	Item       domain.Item `json:"item"`
	NewBalance float64     `json:"new_balance"`
}

// ItemSoldPayloadV1 is the typed payload for item sale events
type ItemSoldPayloadV1 struct {
	Item       domain.Item `json:"item"`
	NewBalance float64     `json:"new_balance"`
}

// UpgradeResolvedPayloadV1 is the typed payload for upgrade events
type UpgradeResolvedPayloadV1 struct {
	Inputs     []domain.Item `json:"inputs"`
	Target     domain.Item   `json:"target"`
	Bet        float64       `json:"bet"`
	Chance     float64       `json:"chance"`
	Won        bool          `json:"won"`
	NewBalance float64       `json:"new_balance"`
}

// ContractSignedPayloadV1 is the typed payload for trade-up contract events
type ContractSignedPayloadV1 struct {
	InputRarity domain.Rarity `json:"input_rarity"`
	Item        domain.Item   `json:"item"`
}

// PromoRedeemedPayloadV1 is the typed payload for promo code events
type PromoRedeemedPayloadV1 struct {
	Code       string  `json:"code"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"new_balance"`
}

// DailyBonusPayloadV1 is the typed payload for daily bonus events
type DailyBonusPayloadV1 struct {
	Amount     float64 `json:"amount"`
	Streak     int     `json:"streak"`
	NewBalance float64 `json:"new_balance"`
}

// BalancePayloadV1 carries the balance after a reset or clear
type BalancePayloadV1 struct {
	Balance float64 `json:"balance"`
	Removed int     `json:"removed,omitempty"`
}

// New creates an event stamped with the schema version
func New(eventType Type, sessionID string, payload any, now time.Time) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payload,
		Timestamp: now,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every ledger event type
func (b *MemoryBus) SubscribeAll(handler Handler) {
	for _, t := range AllTypes() {
		b.Subscribe(t, handler)
	}
}
