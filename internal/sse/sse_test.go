package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/testing/leaktest"
)

var testTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func registerAndWait(t *testing.T, hub *Hub, types ...string) *Client {
	t.Helper()
	before := hub.ClientCount()
	client := hub.Register(types)
	require.Eventually(t, func() bool { return hub.ClientCount() == before+1 }, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case e := <-client.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := startHub(t)
	all := registerAndWait(t, hub)
	wins := registerAndWait(t, hub, " "+EventTypeUpgradeWin+" ")

	hub.Broadcast(EventTypeLiveDrop, LiveDropPayload{Item: "a"})
	hub.Broadcast(EventTypeUpgradeWin, UpgradeWinPayload{Item: "b"})

	assert.Equal(t, EventTypeLiveDrop, receive(t, all).Type)
	assert.Equal(t, EventTypeUpgradeWin, receive(t, all).Type)

	got := receive(t, wins)
	assert.Equal(t, EventTypeUpgradeWin, got.Type)
	assert.NotEmpty(t, got.ID)
	assert.Empty(t, wins.EventChannel, "filtered client receives nothing else")
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	client := registerAndWait(t, hub)

	hub.Unregister(client.ID)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.EventChannel
	assert.False(t, open)
}

func TestHub_StopTwice(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()
	assert.NotPanics(t, hub.Stop)
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		client := registerAndWait(t, hub)
		hub.Broadcast(EventTypeLiveDrop, LiveDropPayload{Item: "a"})
		hub.Stop()

		for range client.EventChannel {
		}
	})
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeLiveDrop, Timestamp: 5, Payload: map[string]int{"x": 1}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: live.drop\ndata: {\"id\":\"1\",\"type\":\"live.drop\",\"timestamp\":5,\"payload\":{\"x\":1}}\n\n",
		string(msg))

	keepalive, err := FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestPlayerTag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"abcdef", "abcdef"},
		{"abcdefghij", "abcdef"},
		{"игрок-номер-один", "игрок-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlayerTag(tt.in), tt.in)
	}
}

func TestSubscriber_BridgesLedgerEvents(t *testing.T) {
	// ARRANGE
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()
	client := registerAndWait(t, hub)
	ctx := context.Background()
	legendary := domain.Item{Name: "AWP | Dragon Lore", Rarity: domain.RarityLegendary, Value: 15000}

	// ACT
	require.NoError(t, bus.Publish(ctx, event.New(event.CaseOpened, "session-123", event.CaseOpenedPayloadV1{
		CaseName: "DUST 2", Item: legendary,
	}, testTime)))
	require.NoError(t, bus.Publish(ctx, event.New(event.UpgradeResolved, "session-123", event.UpgradeResolvedPayloadV1{
		Target: legendary, Won: false,
	}, testTime)))
	require.NoError(t, bus.Publish(ctx, event.New(event.UpgradeResolved, "session-123", event.UpgradeResolvedPayloadV1{
		Target: legendary, Won: true, Chance: 12.5,
	}, testTime)))

	// ASSERT
	drop := receive(t, client)
	assert.Equal(t, EventTypeLiveDrop, drop.Type)
	assert.Equal(t, LiveDropPayload{
		Player: "sessio", Source: DropSourceCase, From: "DUST 2",
		Item: legendary.Name, Rarity: domain.RarityLegendary, Value: 15000,
	}, drop.Payload)

	upgradeDrop := receive(t, client)
	assert.Equal(t, DropSourceUpgrade, upgradeDrop.Payload.(LiveDropPayload).Source)

	win := receive(t, client)
	assert.Equal(t, EventTypeUpgradeWin, win.Type)
	assert.Equal(t, 12.5, win.Payload.(UpgradeWinPayload).Chance)
}

func TestSubscriber_IgnoresForeignPayloads(t *testing.T) {
	hub := startHub(t)
	s := NewSubscriber(hub, event.NewMemoryBus())

	assert.NoError(t, s.handleCaseOpened(context.Background(), event.Event{Payload: "bad"}))
	assert.NoError(t, s.handleContractSigned(context.Background(), event.Event{Payload: 1}))
	assert.NoError(t, s.handleUpgradeResolved(context.Background(), event.Event{}))
}

func TestSubscriber_DecodesForwardedPayloads(t *testing.T) {
	// ARRANGE: a payload that went through JSON arrives as a generic map
	hub := startHub(t)
	s := NewSubscriber(hub, event.NewMemoryBus())
	client := registerAndWait(t, hub)
	forwarded := map[string]any{
		"item": map[string]any{"name": "M4A4 | Вой", "rarity": "legendary", "value": 1200.0},
	}

	// ACT
	err := s.handleContractSigned(context.Background(), event.Event{
		Type: event.ContractSigned, SessionID: "abcdefgh", Payload: forwarded,
	})

	// ASSERT
	require.NoError(t, err)
	drop := receive(t, client)
	assert.Equal(t, LiveDropPayload{
		Player: "abcdef", Source: DropSourceContract,
		Item: "M4A4 | Вой", Rarity: domain.RarityLegendary, Value: 1200,
	}, drop.Payload)
}

func TestHandler_StreamsEvents(t *testing.T) {
	// ARRANGE
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+EventTypeLiveDrop, nil)
	require.NoError(t, err)

	// ACT
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if line == "\n" {
				return strings.Join(lines, "")
			}
			lines = append(lines, line)
		}
	}

	connected := readEvent()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(EventTypeLiveDrop, LiveDropPayload{Item: "P250 | Сандуни"})
	drop := readEvent()

	// ASSERT
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Contains(t, connected, "event: connected\n")
	assert.Contains(t, drop, "event: live.drop\n")
	assert.Contains(t, drop, "P250 | Сандуни")
}
