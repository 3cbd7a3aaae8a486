package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(CaseOpened, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	now := time.Now()
	payload := CaseOpenedPayloadV1{CaseID: "dust2", Item: domain.Item{Name: "x"}}
	err := bus.Publish(context.Background(), New(CaseOpened, "s1", payload, now))

	require.NoError(t, err)
	assert.Equal(t, EventSchemaVersion, got.Version)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, now, got.Timestamp)

	decoded, err := DecodePayload[CaseOpenedPayloadV1](got)
	require.NoError(t, err)
	assert.Equal(t, "dust2", decoded.CaseID)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemSold, handler)
	bus.Subscribe(ItemSold, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Type: ItemSold}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: SessionReset}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	ran := false

	bus.Subscribe(PromoRedeemed, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(PromoRedeemed, func(ctx context.Context, e Event) error {
		ran = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: PromoRedeemed})
	assert.Error(t, err)
	assert.True(t, ran, "later handlers still run")
}

func TestMemoryBus_SubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]bool{}

	bus.SubscribeAll(func(ctx context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	for _, tp := range AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: tp}))
	}
	assert.Len(t, seen, len(AllTypes()))
}

func TestDecodePayload(t *testing.T) {
	promo := PromoRedeemedPayloadV1{Code: "WELCOME100", Amount: 100}
	var nilPromo *PromoRedeemedPayloadV1

	tests := []struct {
		name      string
		payload   any
		want      PromoRedeemedPayloadV1
		wantError bool
	}{
		{"value", promo, promo, false},
		{"pointer", &promo, promo, false},
		{"generic map", map[string]any{"code": "WELCOME100", "amount": 100.0}, promo, false},
		{"missing", nil, PromoRedeemedPayloadV1{}, true},
		{"nil pointer", nilPromo, PromoRedeemedPayloadV1{}, true},
		{"undecodable", map[string]any{"amount": "lots"}, PromoRedeemedPayloadV1{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[PromoRedeemedPayloadV1](Event{Type: PromoRedeemed, Payload: tt.payload})

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrDataIntegrity))
				assert.Contains(t, err.Error(), string(PromoRedeemed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Code, got.Code)
			assert.Equal(t, tt.want.Amount, got.Amount)
		})
	}
}
