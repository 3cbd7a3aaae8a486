package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
)

// playerTagLength is how much of a session id the public feed shows
const playerTagLength = 6

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CaseOpened, s.handleCaseOpened)
	s.bus.Subscribe(event.UpgradeResolved, s.handleUpgradeResolved)
	s.bus.Subscribe(event.ContractSigned, s.handleContractSigned)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.CaseOpened),
			string(event.UpgradeResolved),
			string(event.ContractSigned),
		})
}

// handleCaseOpened puts every case drop on the live feed
func (s *Subscriber) handleCaseOpened(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CaseOpenedPayloadV1](evt)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcastDrop(evt.SessionID, DropSourceCase, payload.CaseName, payload.Item)
	return nil
}

// handleUpgradeResolved announces wins only; losses drop nothing
func (s *Subscriber) handleUpgradeResolved(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.UpgradeResolvedPayloadV1](evt)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	if !payload.Won {
		return nil
	}

	s.broadcastDrop(evt.SessionID, DropSourceUpgrade, "", payload.Target)
	s.hub.Broadcast(EventTypeUpgradeWin, UpgradeWinPayload{
		Player: PlayerTag(evt.SessionID),
		Item:   payload.Target.Name,
		Rarity: payload.Target.Rarity,
		Value:  payload.Target.Value,
		Chance: payload.Chance,
	})
	return nil
}

// handleContractSigned puts the contract reward on the live feed
func (s *Subscriber) handleContractSigned(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ContractSignedPayloadV1](evt)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcastDrop(evt.SessionID, DropSourceContract, "", payload.Item)
	return nil
}

func (s *Subscriber) broadcastDrop(sessionID, source, from string, item domain.Item) {
	s.hub.Broadcast(EventTypeLiveDrop, LiveDropPayload{
		Player: PlayerTag(sessionID),
		Source: source,
		From:   from,
		Item:   item.Name,
		Icon:   item.Icon,
		Rarity: item.Rarity,
		Value:  item.Value,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeLiveDrop,
		"source", source,
		"rarity", item.Rarity)
}

// PlayerTag shortens a session id for public display
func PlayerTag(sessionID string) string {
	runes := []rune(sessionID)
	if len(runes) <= playerTagLength {
		return sessionID
	}
	return string(runes[:playerTagLength])
}
