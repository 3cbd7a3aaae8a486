package ledger_bench

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/odds"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
	"github.com/osse101/CaseForge_Go/internal/storage"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// StubBus implements event.Bus without subscribers
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error       { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

// opensPerSession stays under the starting balance for the cheapest case
const opensPerSession = 40

func newService(cat *catalog.Catalog) ledger.Service {
	return ledger.NewService(storage.NewMemoryStore(), cat,
		reward.NewGenerator(utils.SeededSource(1), cat),
		resolver.New(utils.SeededSource(2)),
		&StubBus{},
		ledger.Options{})
}

// BenchmarkOpenCase measures a full committed case opening: load, roll,
// encode and save
func BenchmarkOpenCase(b *testing.B) {
	cat := catalog.Default()
	svc := newService(cat)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sessionID := fmt.Sprintf("bench-%d", i/opensPerSession)
		if _, err := svc.OpenCase(ctx, sessionID, "chupacabra"); err != nil {
			b.Fatalf("OpenCase failed: %v", err)
		}
	}
}

// BenchmarkOpenCase_Parallel measures contention across independent sessions
func BenchmarkOpenCase_Parallel(b *testing.B) {
	cat := catalog.Default()
	svc := newService(cat)
	ctx := context.Background()

	var workers atomic.Int64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		worker := workers.Add(1)
		n := 0
		for pb.Next() {
			sessionID := fmt.Sprintf("bench-%d-%d", worker, n/opensPerSession)
			if _, err := svc.OpenCase(ctx, sessionID, "chupacabra"); err != nil {
				b.Errorf("OpenCase failed: %v", err)
				return
			}
			n++
		}
	})
}

// BenchmarkGenerator_OpenCase measures the reward roll and reel fill alone
func BenchmarkGenerator_OpenCase(b *testing.B) {
	cat := catalog.Default()
	gen := reward.NewGenerator(utils.SeededSource(1), cat)
	def := cat.Cases[0]
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.OpenCase(ctx, def); err != nil {
			b.Fatalf("OpenCase failed: %v", err)
		}
	}
}

// BenchmarkQuoteAndResolve measures pricing and settling one upgrade
func BenchmarkQuoteAndResolve(b *testing.B) {
	res := resolver.New(utils.SeededSource(3))
	inputs := []domain.Item{
		{ID: "common-0", Rarity: domain.RarityCommon, Value: 50},
		{ID: "rare-0", Rarity: domain.RarityRare, Value: 150},
	}
	target := domain.Item{ID: "legendary-0", Rarity: domain.RarityLegendary, Value: 1200}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		quote, err := odds.NewQuote(ctx, inputs, 25, target)
		if err != nil {
			b.Fatalf("NewQuote failed: %v", err)
		}
		res.Resolve(ctx, quote.Chance)
	}
}
